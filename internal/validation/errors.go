// Package validation provides input URL checks and safeguards for externally scraped content.
package validation

import "fmt"

// URL input field names
const (
	FieldProfileURL = "profile_url"
	FieldJobURL     = "job_url"
)

// URLError represents a rejected wizard input URL
type URLError struct {
	Field   string
	URL     string
	Message string
}

func (e *URLError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.URL, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
