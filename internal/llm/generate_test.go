package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/llm/llmtest"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validJob = `{"title":"Senior Engineer","company":"Acme","location":"Remote","description":"Build things",
	"requirements":{"required":["5 years Go"],"skills":["Go","SQL"]},"responsibilities":["Ship"],"keywords":["Go"]}`

func TestGenerateInto_Success(t *testing.T) {
	client := llmtest.New(llmtest.Reply("```json\n" + validJob + "\n```"))

	var job types.JobPosting
	err := llm.GenerateInto(context.Background(), client, "extract", llm.JobPostingSchema(), llm.TierStandard, &job)
	require.NoError(t, err)

	assert.Equal(t, "Senior Engineer", job.Title)
	assert.Equal(t, []string{"Go", "SQL"}, job.Requirements.Skills)

	calls := client.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, llm.TierStandard, calls[0].Tier)
	assert.Equal(t, "object", calls[0].Schema.Type)
	assert.ElementsMatch(t, []string{"title", "company"}, calls[0].Schema.Required)
}

func TestGenerateInto_Errors(t *testing.T) {
	tests := []struct {
		name      string
		response  llmtest.Response
		wantAPI   bool
		wantParse bool
		wantValid bool
	}{
		{name: "provider failure", response: llmtest.Fail(errors.New("quota exceeded")), wantAPI: true},
		{name: "not json", response: llmtest.Reply("I cannot help with that"), wantParse: true},
		{name: "schema mismatch", response: llmtest.Reply(`{"title":"Engineer"}`), wantParse: true, wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := llmtest.New(tt.response)

			var job types.JobPosting
			err := llm.GenerateInto(context.Background(), client, "extract", llm.JobPostingSchema(), llm.TierStandard, &job)
			require.Error(t, err)

			var apiErr *llm.APICallError
			var parseErr *llm.ParseError
			var validationErr *schemas.ValidationError
			assert.Equal(t, tt.wantAPI, errors.As(err, &apiErr))
			assert.Equal(t, tt.wantParse, errors.As(err, &parseErr))
			assert.Equal(t, tt.wantValid, errors.As(err, &validationErr))
		})
	}
}

func TestPredefinedSchemas(t *testing.T) {
	tests := []struct {
		doc      *llm.SchemaDoc
		required []string
	}{
		{llm.ProfileSchema(), []string{"name"}},
		{llm.JobPostingSchema(), []string{"title", "company"}},
		{llm.TailoringInsightsSchema(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.doc.Name, func(t *testing.T) {
			assert.Equal(t, "object", tt.doc.Schema.Type)
			assert.ElementsMatch(t, tt.required, tt.doc.Schema.Required)
		})
	}

	exp := llm.ProfileSchema().Schema.Properties["experience"]
	require.NotNil(t, exp)
	assert.Equal(t, "array", exp.Type)
	// Incomplete entries are filtered after generation, not rejected by the schema.
	assert.Empty(t, exp.Items.Required)
}

func TestParseSchemaDoc_Invalid(t *testing.T) {
	_, err := llm.ParseSchemaDoc("broken", []byte(`{not json`))
	assert.Error(t, err)
}
