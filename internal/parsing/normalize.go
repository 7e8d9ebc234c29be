package parsing

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"sql":        "SQL",
	"aws":        "AWS",
	"gcp":        "GCP",
	"html":       "HTML",
	"css":        "CSS",
}

// maxAcronymLength is the longest all-caps word kept as an acronym (SQL, AWS, HTML).
const maxAcronymLength = 4

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	upper := strings.ToUpper(normalized)
	singleWord := !strings.Contains(normalized, " ")

	// All-caps single words longer than an acronym get title case
	if normalized == upper && normalized != lower && singleWord && len(normalized) > maxAcronymLength {
		return strings.ToUpper(normalized[:1]) + strings.ToLower(normalized[1:])
	}

	// All lowercase single word: capitalize first letter
	if normalized == lower && normalized != upper && singleWord {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// NormalizeProfile cleans an extracted profile in place: nil collections become empty,
// incomplete entries are dropped, skills are de-duplicated, and at least one
// experience entry is guaranteed.
func NormalizeProfile(p *types.Profile) {
	p.Name = strings.TrimSpace(p.Name)
	p.Headline = strings.TrimSpace(p.Headline)
	p.Location = strings.TrimSpace(p.Location)
	p.Summary = strings.TrimSpace(p.Summary)

	experience := make([]types.Experience, 0, len(p.Experience))
	for _, exp := range p.Experience {
		exp.Title = strings.TrimSpace(exp.Title)
		exp.Company = strings.TrimSpace(exp.Company)
		if exp.Title == "" || exp.Company == "" {
			continue
		}
		exp.Skills = cleanSkills(exp.Skills)
		experience = append(experience, exp)
	}
	if len(experience) == 0 {
		experience = append(experience, placeholderExperience())
	}
	p.Experience = experience

	education := make([]types.Education, 0, len(p.Education))
	for _, edu := range p.Education {
		if strings.TrimSpace(edu.School) == "" || strings.TrimSpace(edu.Degree) == "" {
			continue
		}
		education = append(education, edu)
	}
	p.Education = education

	p.Skills = cleanSkills(p.Skills)

	p.Certifications = emptyIfNil(p.Certifications)
	p.Languages = emptyIfNil(p.Languages)
	p.Projects = emptyIfNil(p.Projects)
	p.Volunteering = emptyIfNil(p.Volunteering)
	p.Awards = emptyIfNil(p.Awards)
}

// NormalizeJobPosting cleans an extracted posting in place. Absent lists become empty,
// requirement skills are canonicalised and keyword lists de-duplicated.
func NormalizeJobPosting(j *types.JobPosting) {
	j.Title = strings.TrimSpace(j.Title)
	j.Company = strings.TrimSpace(j.Company)
	j.Location = strings.TrimSpace(j.Location)

	req := &j.Requirements
	req.Required = trimmedList(req.Required)
	req.Preferred = trimmedList(req.Preferred)
	req.Education = trimmedList(req.Education)
	req.Experience = trimmedList(req.Experience)
	req.Certifications = trimmedList(req.Certifications)

	skills := make([]string, 0, len(req.Skills))
	for _, s := range req.Skills {
		skills = append(skills, NormalizeSkillName(s))
	}
	req.Skills = dedupeFold(skills)

	j.Responsibilities = trimmedList(j.Responsibilities)
	j.Benefits = trimmedList(j.Benefits)
	j.Keywords = dedupeFold(j.Keywords)
	j.IndustryTerms = dedupeFold(j.IndustryTerms)
}

// cleanSkills drops one-character entries and case-insensitive duplicates, keeping first spellings.
func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if len([]rune(s)) < 2 || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// dedupeFold trims entries, drops empties, and removes case-insensitive duplicates.
func dedupeFold(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		key := strings.ToLower(item)
		if item == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// trimmedList trims entries and drops empties. Never returns nil.
func trimmedList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
