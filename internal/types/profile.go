// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile represents a candidate's professional record as extracted from a LinkedIn page.
// Skills order is significant: it encodes relevance ranking.
type Profile struct {
	Name           string          `json:"name"`
	Headline       string          `json:"headline"`
	Location       string          `json:"location"`
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience" validate:"dive"`
	Education      []Education     `json:"education"`
	Skills         []string        `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
	Projects       []Project       `json:"projects"`
	Volunteering   []Volunteering  `json:"volunteering"`
	Awards         []Award         `json:"awards"`
}

// Experience represents a single position held by the candidate
type Experience struct {
	Title       string   `json:"title" validate:"required"`
	Company     string   `json:"company" validate:"required"`
	Duration    string   `json:"duration"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// Education represents a degree or course of study
type Education struct {
	School   string   `json:"school"`
	Degree   string   `json:"degree"`
	Field    string   `json:"field"`
	Duration string   `json:"duration"`
	GPA      string   `json:"gpa,omitempty"`
	Honors   []string `json:"honors,omitempty"`
}

// Certification represents a professional certification
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	CredentialID string `json:"credentialId,omitempty"`
}

// Language represents a spoken language and proficiency
type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// Project represents a personal or professional project
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// Volunteering represents a volunteer role
type Volunteering struct {
	Organization string `json:"organization"`
	Role         string `json:"role"`
	Duration     string `json:"duration"`
	Description  string `json:"description"`
}

// Award represents an honor or award
type Award struct {
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

// Clone returns a deep copy of the profile. Nil slices stay nil.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}

	c := *p
	c.Skills = cloneStrings(p.Skills)

	if p.Experience != nil {
		c.Experience = make([]Experience, len(p.Experience))
		for i, exp := range p.Experience {
			exp.Skills = cloneStrings(exp.Skills)
			c.Experience[i] = exp
		}
	}
	if p.Education != nil {
		c.Education = make([]Education, len(p.Education))
		for i, edu := range p.Education {
			edu.Honors = cloneStrings(edu.Honors)
			c.Education[i] = edu
		}
	}
	if p.Projects != nil {
		c.Projects = make([]Project, len(p.Projects))
		for i, proj := range p.Projects {
			proj.Technologies = cloneStrings(proj.Technologies)
			c.Projects[i] = proj
		}
	}
	c.Certifications = cloneSlice(p.Certifications)
	c.Languages = cloneSlice(p.Languages)
	c.Volunteering = cloneSlice(p.Volunteering)
	c.Awards = cloneSlice(p.Awards)

	return &c
}

// HasCompleteExperience reports whether at least one experience entry has both a title and a company.
func (p *Profile) HasCompleteExperience() bool {
	for _, exp := range p.Experience {
		if exp.Title != "" && exp.Company != "" {
			return true
		}
	}
	return false
}

func cloneStrings(s []string) []string {
	return cloneSlice(s)
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
