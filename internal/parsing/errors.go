package parsing

import "fmt"

// ErrorKind classifies why a job posting could not be extracted
type ErrorKind string

const (
	// KindScrape means the page could not be retrieved
	KindScrape ErrorKind = "scrape"
	// KindInsufficientContent means the page had too little text to analyze
	KindInsufficientContent ErrorKind = "insufficient_content"
	// KindGeneration means the generation provider call failed
	KindGeneration ErrorKind = "generation"
	// KindInvalidOutput means the provider returned unparseable or off-schema output
	KindInvalidOutput ErrorKind = "invalid_output"
	// KindMissingFields means title or company could not be determined
	KindMissingFields ErrorKind = "missing_fields"
)

// ExtractionError is returned by JobExtractor.Extract
type ExtractionError struct {
	Kind    ErrorKind
	URL     string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job posting extraction failed (%s): %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("job posting extraction failed (%s): %s", e.Kind, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// User-facing messages per kind.
const (
	msgScrape              = "Unable to retrieve the job posting page."
	msgInsufficientContent = "Unable to extract sufficient content from job posting. Please ensure the URL is accessible."
	msgGeneration          = "Failed to analyze the job posting."
	msgInvalidOutput       = "The job posting analysis returned an unexpected format."
	msgMissingFields       = "Unable to extract job title and company from the job posting."
)
