package model

// Manifest holds the fields of package.json the release flow reads
type Manifest struct {
	Version *string `json:"version"`
}
