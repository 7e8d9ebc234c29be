package schemas

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestNames(t *testing.T) {
	assert.ElementsMatch(t, []string{ProfileFile, JobPostingFile, TailoringInsightsFile}, Names())
}

func TestAllSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			data, err := Read(name)
			require.NoError(t, err)

			var v map[string]any
			require.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON")
			assert.Equal(t, "object", v["type"])

			_, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
			assert.NoError(t, err, "schema should compile")
		})
	}
}

func TestRead_Missing(t *testing.T) {
	_, err := Read("nope.schema.json")
	assert.Error(t, err)
}

func TestProfileSchema_Documents(t *testing.T) {
	data, err := Read(ProfileFile)
	require.NoError(t, err)

	tests := []struct {
		name  string
		doc   string
		valid bool
	}{
		{
			name: "complete profile",
			doc: `{"name":"Jane Doe","headline":"Engineer","location":"Berlin","summary":"",
				"experience":[{"title":"Engineer","company":"Acme","duration":"2020 - Present","description":"Built things"}],
				"education":[],"skills":["Go"]}`,
			valid: true,
		},
		{
			name:  "location and education omitted",
			doc:   `{"name":"Jane Doe","headline":"Engineer","experience":[{"title":"Engineer","company":"Acme"}],"skills":["Go"]}`,
			valid: true,
		},
		{
			name: "experience entry without company",
			doc: `{"name":"Jane Doe","experience":[{"title":"Engineer","company":"Acme"},
				{"title":"Contractor","duration":"2018"}]}`,
			valid: true,
		},
		{
			name:  "missing name",
			doc:   `{"headline":"Engineer","experience":[]}`,
			valid: false,
		},
		{
			name:  "experience is not a list",
			doc:   `{"name":"Jane Doe","experience":"Acme"}`,
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.ValidateJSONString(string(data), tt.doc)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestJobPostingSchema_Documents(t *testing.T) {
	data, err := Read(JobPostingFile)
	require.NoError(t, err)

	tests := []struct {
		name      string
		doc       string
		wantField string
	}{
		{
			name: "arrays omitted",
			doc:  `{"title":"Senior Go Engineer","company":"Acme","requirements":{"required":["Go"]}}`,
		},
		{
			name:      "missing company",
			doc:       `{"title":"Senior Go Engineer","keywords":["Go"]}`,
			wantField: "(root)",
		},
		{
			name:      "skills is not a list",
			doc:       `{"title":"Engineer","company":"Acme","requirements":{"skills":"Go"}}`,
			wantField: "requirements.skills",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.ValidateJSONString(string(data), tt.doc)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *schemas.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Errors[0].Field)
		})
	}
}
