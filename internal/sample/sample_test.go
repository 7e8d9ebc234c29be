package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/validation"
)

func TestProfile(t *testing.T) {
	p := Profile()

	require.NoError(t, p.Validate())
	assert.NotEmpty(t, p.Name)
	assert.Len(t, p.Experience, 3)
	assert.Len(t, p.Education, 2)
	assert.Subset(t, p.Skills, []string{"React", "TypeScript", "Go", "SQL"})
}

func TestJobPosting(t *testing.T) {
	j := JobPosting()

	require.NoError(t, j.Validate())
	assert.Equal(t, "Senior Full-Stack Engineer", j.Title)
	assert.NotEmpty(t, j.Requirements.Skills)
}

func TestFreshCopies(t *testing.T) {
	p1, j1 := Pair()
	p1.Experience[0].Title = "changed"
	p1.Skills[0] = "changed"
	j1.Requirements.Skills[0] = "changed"

	p2, j2 := Pair()
	assert.Equal(t, "Senior Software Engineer", p2.Experience[0].Title)
	assert.Equal(t, "JavaScript", p2.Skills[0])
	assert.Equal(t, "React", j2.Requirements.Skills[0])
}

func TestURLsAreValid(t *testing.T) {
	assert.True(t, validation.ValidateProfileURL(ProfileURL))
	assert.True(t, validation.ValidateJobURL(JobURL))
}
