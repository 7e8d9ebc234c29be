package tailoring

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/types"
)

func buildTailorPrompt(profile *types.Profile, job *types.JobPosting) string {
	titles := make([]string, 0, len(profile.Experience))
	companies := make([]string, 0, len(profile.Experience))
	durations := make([]string, 0, len(profile.Experience))
	for _, exp := range profile.Experience {
		titles = append(titles, quote(exp.Title))
		companies = append(companies, quote(exp.Company))
		durations = append(durations, quote(exp.Duration))
	}

	return prompts.Format(prompts.MustGet(prompts.TailoringFile, "tailor-profile"), map[string]string{
		"Titles":           strings.Join(titles, ", "),
		"Companies":        strings.Join(companies, ", "),
		"Durations":        strings.Join(durations, ", "),
		"Skills":           strings.Join(profile.Skills, ", "),
		"Profile":          describeProfile(profile),
		"JobTitle":         job.Title,
		"JobCompany":       job.Company,
		"Required":         strings.Join(job.Requirements.Required, "; "),
		"JobSkills":        strings.Join(job.Requirements.Skills, ", "),
		"Responsibilities": strings.Join(job.Responsibilities, "; "),
		"Keywords":         strings.Join(job.Keywords, ", "),
	})
}

func buildInsightsPrompt(original, tailored *types.Profile, job *types.JobPosting) string {
	requirements, err := json.MarshalIndent(job.Requirements, "", "  ")
	if err != nil {
		requirements = []byte(strings.Join(job.Requirements.Required, "\n"))
	}

	return prompts.Format(prompts.MustGet(prompts.TailoringFile, "tailoring-insights"), map[string]string{
		"OriginalSummary":    original.Summary,
		"TailoredSummary":    tailored.Summary,
		"OriginalExperience": describeExperience(original.Experience),
		"TailoredExperience": describeExperience(tailored.Experience),
		"Skills":             strings.Join(tailored.Skills, ", "),
		"JobTitle":           job.Title,
		"JobCompany":         job.Company,
		"Requirements":       string(requirements),
	})
}

func describeProfile(p *types.Profile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\nHeadline: %s\nLocation: %s\nSummary: %s\n\n", p.Name, p.Headline, p.Location, p.Summary)

	sb.WriteString("Experience:\n")
	for i, exp := range p.Experience {
		fmt.Fprintf(&sb, "%d. Title: %s\n   Company: %s\n   Duration: %s\n", i+1, quote(exp.Title), quote(exp.Company), quote(exp.Duration))
		if exp.Location != "" {
			fmt.Fprintf(&sb, "   Location: %s\n", exp.Location)
		}
		fmt.Fprintf(&sb, "   Description: %s\n", exp.Description)
		if len(exp.Skills) > 0 {
			fmt.Fprintf(&sb, "   Skills: %s\n", strings.Join(exp.Skills, ", "))
		}
	}

	sb.WriteString("\nEducation:\n")
	for i, edu := range p.Education {
		fmt.Fprintf(&sb, "%d. %s in %s at %s (%s)\n", i+1, edu.Degree, edu.Field, edu.School, edu.Duration)
	}

	fmt.Fprintf(&sb, "\nSkills: %s\n", strings.Join(p.Skills, ", "))
	return sb.String()
}

func describeExperience(experience []types.Experience) string {
	lines := make([]string, 0, len(experience))
	for i, exp := range experience {
		lines = append(lines, fmt.Sprintf("%d. %s at %s: %s", i+1, exp.Title, exp.Company, exp.Description))
	}
	return strings.Join(lines, "\n")
}

func quote(s string) string {
	return `"` + s + `"`
}
