package validation

import (
	"regexp"
	"strings"
)

var profileURLPattern = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/in/[a-zA-Z0-9-]+/?$`)

// ValidateProfileURL reports whether url is a LinkedIn public profile URL.
// Query strings, fragments and non-profile LinkedIn pages are rejected.
func ValidateProfileURL(url string) bool {
	return profileURLPattern.MatchString(url)
}

// JobURLMatcher is a permissive allow-list of job posting URL shapes.
// A URL matches if any pattern matches or the URL contains any substring.
type JobURLMatcher struct {
	Patterns   []*regexp.Regexp
	Substrings []string
}

// DefaultJobBoardPatterns returns the known job board URL patterns.
func DefaultJobBoardPatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`^https?://(www\.)?linkedin\.com/jobs/view/\d+`),
		regexp.MustCompile(`^https?://(www\.)?indeed\.com/viewjob`),
		regexp.MustCompile(`^https?://(www\.)?glassdoor\.com/job-listing`),
		regexp.MustCompile(`^https?://(www\.)?monster\.com/job-openings`),
		regexp.MustCompile(`^https?://(www\.)?ziprecruiter\.com/jobs`),
		regexp.MustCompile(`^https?://jobs\.lever\.co`),
		regexp.MustCompile(`^https?://boards\.greenhouse\.io`),
		regexp.MustCompile(`^https?://.*\.workday\.com`),
		regexp.MustCompile(`^https?://careers\.`),
		regexp.MustCompile(`^https?://jobs\.`),
	}
}

// DefaultJobURLMatcher returns the matcher used by ValidateJobURL.
func DefaultJobURLMatcher() *JobURLMatcher {
	return &JobURLMatcher{
		Patterns:   DefaultJobBoardPatterns(),
		Substrings: []string{"job", "career"},
	}
}

// WithSubstrings returns a copy of the matcher with extra substrings appended.
func (m *JobURLMatcher) WithSubstrings(extra ...string) *JobURLMatcher {
	out := &JobURLMatcher{
		Patterns:   append([]*regexp.Regexp(nil), m.Patterns...),
		Substrings: append([]string(nil), m.Substrings...),
	}
	for _, s := range extra {
		if s = strings.TrimSpace(s); s != "" {
			out.Substrings = append(out.Substrings, s)
		}
	}
	return out
}

// Match reports whether url looks like a job posting. Substring checks are case-sensitive.
func (m *JobURLMatcher) Match(url string) bool {
	for _, p := range m.Patterns {
		if p.MatchString(url) {
			return true
		}
	}
	for _, s := range m.Substrings {
		if strings.Contains(url, s) {
			return true
		}
	}
	return false
}

var defaultJobURLMatcher = DefaultJobURLMatcher()

// ValidateJobURL reports whether url matches the default job URL allow-list.
func ValidateJobURL(url string) bool {
	return defaultJobURLMatcher.Match(url)
}

// CheckProfileURL returns a *URLError when profileURL is missing or not a LinkedIn profile.
func CheckProfileURL(profileURL string) error {
	profileURL = strings.TrimSpace(profileURL)
	switch {
	case profileURL == "":
		return &URLError{Field: FieldProfileURL, Message: "LinkedIn URL is required"}
	case !ValidateProfileURL(profileURL):
		return &URLError{Field: FieldProfileURL, URL: profileURL, Message: "Please enter a valid LinkedIn URL"}
	}
	return nil
}

// CheckJobURL returns a *URLError when jobURL is missing or rejected by matcher.
// A nil matcher means the default job URL allow-list.
func CheckJobURL(jobURL string, matcher *JobURLMatcher) error {
	if matcher == nil {
		matcher = defaultJobURLMatcher
	}
	jobURL = strings.TrimSpace(jobURL)
	switch {
	case jobURL == "":
		return &URLError{Field: FieldJobURL, Message: "Job posting URL is required"}
	case !matcher.Match(jobURL):
		return &URLError{Field: FieldJobURL, URL: jobURL, Message: "Please enter a valid job posting URL"}
	}
	return nil
}

// ValidateURLs checks both wizard inputs and returns the first failure as a *URLError.
func ValidateURLs(profileURL, jobURL string, matcher *JobURLMatcher) error {
	if err := CheckProfileURL(profileURL); err != nil {
		return err
	}
	return CheckJobURL(jobURL, matcher)
}
