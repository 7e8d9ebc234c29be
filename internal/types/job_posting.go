// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobPosting represents a structured job posting extracted from a job board page
type JobPosting struct {
	Title            string       `json:"title" validate:"required"`
	Company          string       `json:"company" validate:"required"`
	Location         string       `json:"location"`
	EmploymentType   string       `json:"employmentType"`
	ExperienceLevel  string       `json:"experienceLevel"`
	Description      string       `json:"description"`
	Requirements     Requirements `json:"requirements"`
	Responsibilities []string     `json:"responsibilities"`
	Benefits         []string     `json:"benefits"`
	Salary           *Salary      `json:"salary,omitempty"`
	Keywords         []string     `json:"keywords"`
	IndustryTerms    []string     `json:"industryTerms"`
}

// Requirements groups the qualifications listed in a posting
type Requirements struct {
	Required       []string `json:"required"`
	Preferred      []string `json:"preferred"`
	Education      []string `json:"education"`
	Experience     []string `json:"experience"`
	Skills         []string `json:"skills"`
	Certifications []string `json:"certifications"`
}

// Salary represents an advertised compensation range
type Salary struct {
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Currency string   `json:"currency"`
	Period   string   `json:"period"`
}

// Clone returns a deep copy of the job posting.
func (j *JobPosting) Clone() *JobPosting {
	if j == nil {
		return nil
	}

	c := *j
	c.Requirements = Requirements{
		Required:       cloneStrings(j.Requirements.Required),
		Preferred:      cloneStrings(j.Requirements.Preferred),
		Education:      cloneStrings(j.Requirements.Education),
		Experience:     cloneStrings(j.Requirements.Experience),
		Skills:         cloneStrings(j.Requirements.Skills),
		Certifications: cloneStrings(j.Requirements.Certifications),
	}
	c.Responsibilities = cloneStrings(j.Responsibilities)
	c.Benefits = cloneStrings(j.Benefits)
	c.Keywords = cloneStrings(j.Keywords)
	c.IndustryTerms = cloneStrings(j.IndustryTerms)

	if j.Salary != nil {
		s := *j.Salary
		if j.Salary.Min != nil {
			v := *j.Salary.Min
			s.Min = &v
		}
		if j.Salary.Max != nil {
			v := *j.Salary.Max
			s.Max = &v
		}
		c.Salary = &s
	}

	return &c
}

// RelevantTerms returns the posting's skills, required qualifications and keywords,
// in that order. Used to rank profile skills against the job.
func (j *JobPosting) RelevantTerms() []string {
	terms := make([]string, 0, len(j.Requirements.Skills)+len(j.Requirements.Required)+len(j.Keywords))
	terms = append(terms, j.Requirements.Skills...)
	terms = append(terms, j.Requirements.Required...)
	terms = append(terms, j.Keywords...)
	return terms
}
