package parsing

import (
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Golang to Go", "Golang", "Go"},
		{"golang to Go", "golang", "Go"},
		{"GOLANG to Go", "GOLANG", "Go"},
		{"go lang to Go", "go lang", "Go"},
		{"JavaScript normalization", "javascript", "JavaScript"},
		{"JS to JavaScript", "js", "JavaScript"},
		{"JS to JavaScript uppercase", "JS", "JavaScript"},
		{"TypeScript normalization", "typescript", "TypeScript"},
		{"TS to TypeScript", "ts", "TypeScript"},
		{"K8s to Kubernetes", "k8s", "Kubernetes"},
		{"Kubernetes stays Kubernetes", "Kubernetes", "Kubernetes"},
		{"react.js to React", "react.js", "React"},
		{"reactjs to React", "reactjs", "React"},
		{"vue.js to Vue", "vue.js", "Vue"},
		{"node.js stays node.js", "node.js", "Node.js"},
		{"nodejs to Node.js", "nodejs", "Node.js"},
		{"Python stays Python", "Python", "Python"},
		{"python to Python", "python", "Python"},
		{"PYTHON to Python", "PYTHON", "Python"},
		{"Empty string", "", ""},
		{"Whitespace only", "   ", ""},
		{"Multi-word stays as-is", "Distributed Systems", "Distributed Systems"},
		{"Already normalized", "Go", "Go"},
		{"Mixed case single word", "JavaScript", "JavaScript"},
		{"Acronym stays upper", "SQL", "SQL"},
		{"Short all caps kept", "HTML", "HTML"},
		{"Lowercase acronym", "aws", "AWS"},
		{"Symbols kept", "C++", "C++"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeSkillName(tt.input)
			assert.Equal(t, tt.expected, result, "should normalize skill name correctly")
		})
	}
}

func TestNormalizeProfile(t *testing.T) {
	p := &types.Profile{
		Name: "  Jane Doe ",
		Experience: []types.Experience{
			{Title: "Staff Engineer", Company: "Acme", Duration: "2021 - Present", Skills: []string{"Go", "go", "K"}},
			{Title: "  ", Company: "Globex"},
			{Title: "Engineer", Company: ""},
		},
		Education: []types.Education{
			{School: "MIT", Degree: "BSc"},
			{School: "MIT", Degree: ""},
		},
		Skills: []string{"React", " SQL ", "react", "C", "", "Go"},
	}

	NormalizeProfile(p)

	assert.Equal(t, "Jane Doe", p.Name)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Staff Engineer", p.Experience[0].Title)
	assert.Equal(t, []string{"Go"}, p.Experience[0].Skills)
	require.Len(t, p.Education, 1)
	assert.Equal(t, []string{"React", "SQL", "Go"}, p.Skills)
	assert.NotNil(t, p.Certifications)
	assert.NotNil(t, p.Languages)
	assert.NotNil(t, p.Projects)
	assert.NotNil(t, p.Volunteering)
	assert.NotNil(t, p.Awards)
}

func TestNormalizeProfile_AddsPlaceholderExperience(t *testing.T) {
	p := &types.Profile{Name: "Jane", Experience: []types.Experience{{Title: "Engineer"}}}

	NormalizeProfile(p)

	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Professional Role", p.Experience[0].Title)
	assert.Equal(t, "Previous Company", p.Experience[0].Company)
	assert.Equal(t, []string{"Professional Skills"}, p.Experience[0].Skills)
	assert.NotNil(t, p.Education)
	assert.NotNil(t, p.Skills)
}

func TestNormalizeJobPosting(t *testing.T) {
	j := &types.JobPosting{
		Title:   " Senior Engineer ",
		Company: "Acme",
		Requirements: types.Requirements{
			Required: []string{"5 years Go", " "},
			Skills:   []string{"golang", "Go", "postgres", "k8s"},
		},
		Keywords: []string{"Go", "go", "Distributed Systems"},
	}

	NormalizeJobPosting(j)

	assert.Equal(t, "Senior Engineer", j.Title)
	assert.Equal(t, []string{"5 years Go"}, j.Requirements.Required)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Kubernetes"}, j.Requirements.Skills)
	assert.Equal(t, []string{"Go", "Distributed Systems"}, j.Keywords)
	assert.NotNil(t, j.Requirements.Preferred)
	assert.NotNil(t, j.Requirements.Education)
	assert.NotNil(t, j.Requirements.Experience)
	assert.NotNil(t, j.Requirements.Certifications)
	assert.NotNil(t, j.Responsibilities)
	assert.NotNil(t, j.Benefits)
	assert.NotNil(t, j.IndustryTerms)
}
