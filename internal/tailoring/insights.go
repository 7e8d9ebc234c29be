package tailoring

import (
	"github.com/jonathan/resume-tailor/internal/types"
)

// Default insight texts used when the generated insights are missing or sparse.
const (
	defaultSkillName          = "Core Professional Skills"
	defaultSkillExplanation   = "Existing professional skills relevant to the target position"
	defaultSkillRelevance     = 0.8
	defaultSummaryExplanation = "Summary optimized to highlight relevant experience for the target role"
)

// MinimalInsights returns the insights used when none could be generated.
func MinimalInsights(original, tailored *types.Profile) *types.TailoringInsights {
	insights := &types.TailoringInsights{}
	fillInsightDefaults(insights, original, tailored)
	return insights
}

// fillInsightDefaults makes sparse insights presentable: empty lists instead of nil,
// one generic skill match, and summary change fields filled from the two summaries.
func fillInsightDefaults(insights *types.TailoringInsights, original, tailored *types.Profile) {
	if len(insights.SkillsMatch) == 0 {
		insights.SkillsMatch = []types.SkillMatch{{
			Skill:          defaultSkillName,
			FromProfile:    true,
			AddedForJob:    false,
			RelevanceScore: defaultSkillRelevance,
			Explanation:    defaultSkillExplanation,
		}}
	}
	if insights.SummaryChanges == nil {
		insights.SummaryChanges = &types.SummaryChanges{}
	}
	sc := insights.SummaryChanges
	if sc.Original == "" {
		sc.Original = original.Summary
	}
	if sc.Tailored == "" {
		sc.Tailored = tailored.Summary
	}
	if sc.Explanation == "" {
		sc.Explanation = defaultSummaryExplanation
	}
	if sc.KeywordsIntegrated == nil {
		sc.KeywordsIntegrated = []string{}
	}
	if insights.ExperienceAlignment == nil {
		insights.ExperienceAlignment = []types.ExperienceAlignment{}
	}
	if insights.KeywordOptimization == nil {
		insights.KeywordOptimization = []types.KeywordOptimization{}
	}
	if insights.EducationEnhancements == nil {
		insights.EducationEnhancements = []types.EducationEnhancement{}
	}
	if insights.NewSections == nil {
		insights.NewSections = []types.NewSection{}
	}

	// Every skill comes from the profile; generated claims otherwise are wrong.
	for i := range insights.SkillsMatch {
		insights.SkillsMatch[i].FromProfile = true
		insights.SkillsMatch[i].AddedForJob = false
	}
}
