package tailoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func TestMinimalInsights(t *testing.T) {
	original := &types.Profile{Summary: "before"}
	tailored := &types.Profile{Summary: "after"}

	insights := MinimalInsights(original, tailored)

	require.Len(t, insights.SkillsMatch, 1)
	match := insights.SkillsMatch[0]
	assert.Equal(t, "Core Professional Skills", match.Skill)
	assert.True(t, match.FromProfile)
	assert.False(t, match.AddedForJob)
	assert.InDelta(t, 0.8, match.RelevanceScore, 1e-9)

	require.NotNil(t, insights.SummaryChanges)
	assert.Equal(t, "before", insights.SummaryChanges.Original)
	assert.Equal(t, "after", insights.SummaryChanges.Tailored)
	assert.Equal(t, defaultSummaryExplanation, insights.SummaryChanges.Explanation)
	assert.Empty(t, insights.SummaryChanges.KeywordsIntegrated)

	assert.NotNil(t, insights.ExperienceAlignment)
	assert.NotNil(t, insights.KeywordOptimization)
	assert.NotNil(t, insights.EducationEnhancements)
	assert.NotNil(t, insights.NewSections)
}

func TestFillInsightDefaults_KeepsGeneratedContent(t *testing.T) {
	insights := &types.TailoringInsights{
		SkillsMatch: []types.SkillMatch{{Skill: "Go", RelevanceScore: 0.9, AddedForJob: true}},
		SummaryChanges: &types.SummaryChanges{
			Original:           "a",
			Tailored:           "b",
			KeywordsIntegrated: []string{"Go"},
			Explanation:        "x",
		},
	}

	fillInsightDefaults(insights, &types.Profile{}, &types.Profile{})

	require.Len(t, insights.SkillsMatch, 1)
	assert.Equal(t, "Go", insights.SkillsMatch[0].Skill)
	assert.True(t, insights.SkillsMatch[0].FromProfile)
	assert.False(t, insights.SkillsMatch[0].AddedForJob)
	assert.Equal(t, "x", insights.SummaryChanges.Explanation)
	assert.Equal(t, []string{"Go"}, insights.SummaryChanges.KeywordsIntegrated)
}

func TestFillInsightDefaults_PartialSummaryChanges(t *testing.T) {
	insights := &types.TailoringInsights{
		SummaryChanges: &types.SummaryChanges{KeywordsIntegrated: []string{"React"}},
	}

	fillInsightDefaults(insights, &types.Profile{Summary: "before"}, &types.Profile{Summary: "after"})

	assert.Equal(t, "before", insights.SummaryChanges.Original)
	assert.Equal(t, "after", insights.SummaryChanges.Tailored)
	assert.Equal(t, defaultSummaryExplanation, insights.SummaryChanges.Explanation)
	assert.Equal(t, []string{"React"}, insights.SummaryChanges.KeywordsIntegrated)
}
