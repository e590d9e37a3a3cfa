// pkg/api/refimport_v1.go
package api

// RecordStatusV1 is the stable schema for one classified manifest line.
type RecordStatusV1 struct {
	Manifest string `json:"manifest"`
	Line     int    `json:"line"`
	Kind     string `json:"kind"`    // "path" | "record" | "malformed"
	Outcome  string `json:"outcome"` // "found" | "not_found" | "not_a_file" | "invalid" | "copied" | "malformed"
	Source   string `json:"source,omitempty"`

	// Record fields
	CommonName    string `json:"common_name,omitempty"`
	Genus         string `json:"genus,omitempty"`
	SpeciesStrain string `json:"species_strain,omitempty"`

	// Copy result
	Destination string `json:"destination,omitempty"`
	Bytes       int64  `json:"bytes,omitempty"`
	SHA256      string `json:"sha256,omitempty"`

	Detail string `json:"detail,omitempty"`
}
