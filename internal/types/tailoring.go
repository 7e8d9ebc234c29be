// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TailoringMode records which path produced a tailored profile
type TailoringMode string

const (
	// ModeGenerated means the LLM produced the candidate profile
	ModeGenerated TailoringMode = "generated"
	// ModeFallback means the deterministic, non-LLM transformation produced it
	ModeFallback TailoringMode = "fallback"
)

// TailoringInsights explains what was changed while tailoring and why.
// It is advisory only.
type TailoringInsights struct {
	SkillsMatch           []SkillMatch           `json:"skillsMatch"`
	ExperienceAlignment   []ExperienceAlignment  `json:"experienceAlignment"`
	KeywordOptimization   []KeywordOptimization  `json:"keywordOptimization"`
	SummaryChanges        *SummaryChanges        `json:"summaryChanges"`
	EducationEnhancements []EducationEnhancement `json:"educationEnhancements"`
	NewSections           []NewSection           `json:"newSections"`
}

// SkillMatch describes how a skill relates to the target job
type SkillMatch struct {
	Skill          string  `json:"skill"`
	FromProfile    bool    `json:"fromProfile"`
	AddedForJob    bool    `json:"addedForJob"`
	RelevanceScore float64 `json:"relevanceScore"`
	Explanation    string  `json:"explanation"`
}

// ExperienceAlignment describes how one experience description was rewritten
type ExperienceAlignment struct {
	OriginalTitle       string   `json:"originalTitle"`
	TailoredTitle       string   `json:"tailoredTitle"`
	OriginalDescription string   `json:"originalDescription,omitempty"`
	TailoredDescription string   `json:"tailoredDescription,omitempty"`
	KeywordsAdded       []string `json:"keywordsAdded,omitempty"`
	Explanation         string   `json:"explanation"`
}

// KeywordOptimization describes a single phrase rewritten toward a job keyword
type KeywordOptimization struct {
	Original   string `json:"original"`
	Optimized  string `json:"optimized"`
	JobKeyword string `json:"jobKeyword"`
	Context    string `json:"context"`
}

// SummaryChanges describes the rewrite of the professional summary
type SummaryChanges struct {
	Original           string   `json:"original"`
	Tailored           string   `json:"tailored"`
	KeywordsIntegrated []string `json:"keywordsIntegrated"`
	Explanation        string   `json:"explanation"`
}

// EducationEnhancement describes a presentation note about an education entry
type EducationEnhancement struct {
	Field          string `json:"field"`
	Enhancement    string `json:"enhancement"`
	RelevanceToJob string `json:"relevanceToJob"`
}

// NewSection describes a suggested additional resume section
type NewSection struct {
	Section string `json:"section"`
	Content string `json:"content"`
	Reason  string `json:"reason"`
}

// FieldCorrection records one immutable field that was restored after tailoring
type FieldCorrection struct {
	Field     string `json:"field"`
	Index     int    `json:"index"`
	Original  string `json:"original,omitempty"`
	Candidate string `json:"candidate,omitempty"`
	Reason    string `json:"reason"`
}

// TailoredResume is the output of the tailoring engine
type TailoredResume struct {
	TailoredProfile *Profile           `json:"tailoredProfile"`
	Insights        *TailoringInsights `json:"insights"`
	Mode            TailoringMode      `json:"mode"`
	Corrections     []FieldCorrection  `json:"corrections,omitempty"`
}
