package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-tailor/internal/types"
)

var profileSlugPattern = regexp.MustCompile(`linkedin\.com/in/([^/?#]+)`)

// Placeholder values used when a profile cannot be read.
const (
	fallbackName     = "Professional"
	fallbackHeadline = "Experienced Professional"
	fallbackLocation = "Location Not Specified"
	fallbackSummary  = "Experienced professional with a strong background in their field. " +
		"Please update your LinkedIn profile to be publicly accessible for better results."
	placeholderDescription = "Professional experience in relevant field. " +
		"Please ensure your LinkedIn profile is public and contains detailed work experience for accurate resume generation."
)

// FallbackProfile builds a clearly marked placeholder profile for a URL whose page
// could not be read. The name is derived from the profile slug.
func FallbackProfile(url string) *types.Profile {
	return &types.Profile{
		Name:     NameFromProfileURL(url),
		Headline: fallbackHeadline,
		Location: fallbackLocation,
		Summary:  fallbackSummary,
		Experience: []types.Experience{{
			Title:       "Professional Role",
			Company:     "Previous Company",
			Duration:    "Recent Experience",
			Location:    "Location",
			Description: placeholderDescription,
			Skills:      []string{"Professional Skills", "Industry Knowledge", "Communication"},
		}},
		Education: []types.Education{{
			School:   "Educational Institution",
			Degree:   "Degree",
			Field:    "Field of Study",
			Duration: "Graduation Year",
		}},
		Skills:         []string{"Professional Skills", "Communication", "Problem Solving", "Team Collaboration"},
		Certifications: []types.Certification{},
		Languages:      []types.Language{},
		Projects:       []types.Project{},
		Volunteering:   []types.Volunteering{},
		Awards:         []types.Award{},
	}
}

// placeholderExperience is appended when normalization leaves no experience at all.
func placeholderExperience() types.Experience {
	return types.Experience{
		Title:       "Professional Role",
		Company:     "Previous Company",
		Duration:    "Recent Experience",
		Location:    "Location",
		Description: placeholderDescription,
		Skills:      []string{"Professional Skills"},
	}
}

// NameFromProfileURL turns "linkedin.com/in/jane-doe" into "Jane Doe".
// Returns "Professional" when the URL has no slug.
func NameFromProfileURL(url string) string {
	m := profileSlugPattern.FindStringSubmatch(url)
	if m == nil {
		return fallbackName
	}

	slug := strings.TrimSpace(strings.ReplaceAll(m[1], "-", " "))
	if slug == "" {
		return fallbackName
	}
	return titleWords(slug)
}

// titleWords upper-cases the first letter of every word, leaving the rest untouched.
func titleWords(s string) string {
	runes := []rune(s)
	prevWord := false
	for i, r := range runes {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		if isWord && !prevWord {
			runes[i] = unicode.ToUpper(r)
		}
		prevWord = isWord
	}
	return string(runes)
}
