// Package fetch - platform.go provides platform detection and platform-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known site the scraper has tuned selectors for.
type Platform string

const (
	// PlatformLinkedInProfile is a public LinkedIn member page
	PlatformLinkedInProfile Platform = "linkedin-profile"
	// PlatformLinkedInJobs is a LinkedIn job view page
	PlatformLinkedInJobs Platform = "linkedin-jobs"
	// PlatformGreenhouse is the Greenhouse ATS platform
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS platform
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS platform
	PlatformWorkday Platform = "workday"
	// PlatformIndeed is the Indeed job board
	PlatformIndeed Platform = "indeed"
	// PlatformGlassdoor is the Glassdoor job board
	PlatformGlassdoor Platform = "glassdoor"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the site from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	path := strings.ToLower(parsed.Path)

	switch {
	case strings.HasSuffix(host, "linkedin.com"):
		if strings.HasPrefix(path, "/in/") {
			return PlatformLinkedInProfile
		}
		if strings.HasPrefix(path, "/jobs/") {
			return PlatformLinkedInJobs
		}
		return PlatformUnknown
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "workday.com"), strings.Contains(host, "myworkdayjobs.com"):
		return PlatformWorkday
	case strings.Contains(host, "indeed.com"):
		return PlatformIndeed
	case strings.Contains(host, "glassdoor.com"):
		return PlatformGlassdoor
	}

	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors optimized for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformLinkedInProfile:
		return []string{
			"main.profile",
			".core-rail",
			"section.profile",
			"main",
		}
	case PlatformLinkedInJobs:
		return []string{
			".show-more-less-html__markup",
			".description__text",
			".top-card-layout",
			"main",
		}
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
			".job-post-container",
		}
	case PlatformLever:
		return []string{
			".posting-page",
			".section-wrapper.page-full-width",
			".posting-description",
			".content",
		}
	case PlatformWorkday:
		return []string{
			"[data-automation-id='jobDescription']",
			".gwt-HTML",
			".job-description",
		}
	case PlatformIndeed:
		return []string{
			"#jobDescriptionText",
			".jobsearch-JobComponent",
			"main",
		}
	case PlatformGlassdoor:
		return []string{
			"[class*='JobDetails_jobDescription']",
			".jobDescriptionContent",
			"main",
		}
	default:
		return JobPostingSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific platform.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		// Application forms
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",
		"[data-testid='application-form']",

		// EEO and legal
		".eeo-statement",
		".eeo-section",
		".legal-disclosure",

		// Social and share buttons
		".social-share",
		".share-buttons",

		// Cookie and GDPR
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformLinkedInProfile, PlatformLinkedInJobs:
		return append(common,
			".authwall-join-form",
			".contextual-sign-in-modal",
			".people-also-viewed",
			".similar-jobs",
			"aside",
		)
	case PlatformGreenhouse:
		return append(common,
			".application--wrapper",
			".voluntary-self-id",
			"#usa_self_id_section",
		)
	case PlatformLever:
		return append(common,
			".apply-section",
			".posting-apply",
		)
	case PlatformWorkday:
		return append(common,
			"[data-automation-id='applyButton']",
			".application-section",
		)
	case PlatformIndeed, PlatformGlassdoor:
		return append(common,
			".jobsearch-RelatedLinks",
			"[data-test='similar-jobs']",
		)
	default:
		return common
	}
}
