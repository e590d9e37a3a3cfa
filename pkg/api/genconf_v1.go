// pkg/api/genconf_v1.go
package api

// GeneratedConfigV1 is the stable schema for one generated step config file.
type GeneratedConfigV1 struct {
	Sample string `json:"sample"`
	Step   string `json:"step"`   // lower-case step key as written to the master config
	Module string `json:"module"` // pipeline module identifier
	Path   string `json:"path"`
	Master string `json:"master"`
}
