package pipeline

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"

	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/validation"
)

// Category classifies a failed run for the user
type Category string

// Failure categories
const (
	CategoryInvalidInput     Category = "invalid_input"
	CategoryLinkedInAccess   Category = "linkedin_access"
	CategoryJobPostingAccess Category = "job_posting_access"
	CategoryNetwork          Category = "network"
	CategoryGeneric          Category = "generic"
)

// UserError is the user-facing description of a failed run.
type UserError struct {
	Category    Category `json:"category"`
	Message     string   `json:"error"`
	Remediation []string `json:"remediation"`
	Cause       error    `json:"-"`
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// Describe turns a run error into an actionable message. Returns nil for a nil error.
func Describe(err error) *UserError {
	if err == nil {
		return nil
	}

	var urlErr *validation.URLError
	if errors.As(err, &urlErr) {
		return &UserError{
			Category: CategoryInvalidInput,
			Message:  urlErr.Message,
			Remediation: []string{
				"Use a public profile URL of the form https://www.linkedin.com/in/your-name",
				"Paste the full job posting URL, including https://",
			},
			Cause: err,
		}
	}

	if isNetworkError(err) {
		return &UserError{
			Category: CategoryNetwork,
			Message:  "We could not reach the job posting. Please check your connection and try again.",
			Remediation: []string{
				"Check that the URL opens in your browser",
				"Wait a moment and retry; the site may be rate limiting requests",
				"Use demo mode to preview a tailored resume without network access",
			},
			Cause: err,
		}
	}

	var extErr *parsing.ExtractionError
	if errors.As(err, &extErr) {
		if isLinkedInURL(extErr.URL) {
			return &UserError{
				Category: CategoryLinkedInAccess,
				Message:  "LinkedIn job postings usually require signing in, so the posting could not be read.",
				Remediation: []string{
					"Open the posting on LinkedIn and follow the link to the company's careers page",
					"Use the same job from Greenhouse, Lever, Workday or the company website",
					"Make sure the posting is still open",
				},
				Cause: err,
			}
		}
		return &UserError{
			Category: CategoryJobPostingAccess,
			Message:  extErr.Message,
			Remediation: []string{
				"Make sure the posting is public and still open",
				"Try the direct link from the company's careers page",
				"Check that the page shows the full job description without signing in",
			},
			Cause: err,
		}
	}

	return &UserError{
		Category: CategoryGeneric,
		Message:  "Something went wrong while tailoring your resume. Please try again.",
		Remediation: []string{
			"Retry the request",
			"Use demo mode to preview the result",
		},
		Cause: err,
	}
}

func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func isLinkedInURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == "linkedin.com" || strings.HasSuffix(host, ".linkedin.com")
}
