// pkg/api/deps_v1.go
package api

// DependencyStatusV1 is the stable JSON/JSONL schema for one checked dependency.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type DependencyStatusV1 struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	Strategy     string `json:"strategy"`
	Found        bool   `json:"found"`
	ResolvedPath string `json:"resolved_path,omitempty"`
	Error        string `json:"error,omitempty"`
}
