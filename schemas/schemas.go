// Package schemas embeds the JSON schemas that constrain structured generation.
// The same documents drive the provider's response schema and the post-hoc validation.
package schemas

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed *.schema.json
var files embed.FS

// Schema file names.
const (
	ProfileFile           = "profile.schema.json"
	JobPostingFile        = "job_posting.schema.json"
	TailoringInsightsFile = "tailoring_insights.schema.json"
)

// Read returns the raw content of an embedded schema file.
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", name, err)
	}
	return data, nil
}

// Names lists the embedded schema files.
func Names() []string {
	names, _ := fs.Glob(files, "*.schema.json")
	return names
}
