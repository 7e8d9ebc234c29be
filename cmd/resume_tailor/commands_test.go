package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/validation"
)

func TestSampleCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "sample")
	require.NoError(t, err)

	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Contains(t, string(out["profile"]), "Alex Morgan")
	assert.Contains(t, string(out["job_posting"]), "Northwind Health")
}

func TestValidateURLsCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantError bool
		wantField string
	}{
		{
			name: "both valid",
			args: []string{"validate-urls", "--profile-url", "https://www.linkedin.com/in/jane-doe", "--job-url", "https://jobs.lever.co/acme/1"},
		},
		{
			name:      "bad profile",
			args:      []string{"validate-urls", "--profile-url", "https://linkedin.com/company/acme", "--job-url", "https://jobs.lever.co/acme/1"},
			wantError: true,
			wantField: validation.FieldProfileURL,
		},
		{
			name:      "missing job",
			args:      []string{"validate-urls", "--profile-url", "https://www.linkedin.com/in/jane-doe"},
			wantError: true,
			wantField: validation.FieldJobURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(t, tt.args...)
			if !tt.wantError {
				require.NoError(t, err)
				assert.Contains(t, stdout, "✓ Profile URL is valid")
				assert.Contains(t, stdout, "✓ Job URL is valid")
				return
			}
			require.Error(t, err)
			var urlErr *validation.URLError
			require.True(t, errors.As(err, &urlErr))
			assert.Equal(t, tt.wantField, urlErr.Field)
			assert.Contains(t, stdout, "✗")
		})
	}
}

func TestValidateURLsCommand_ConfigSubstrings(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configFile, []byte(`{"job_url_substrings": ["/open-roles/"]}`), 0o644))

	_, _, err := executeCommand(t, "validate-urls", "--config", configFile,
		"--profile-url", "https://www.linkedin.com/in/jane-doe",
		"--job-url", "https://acme.com/open-roles/42")

	assert.NoError(t, err)
}

func TestTailorCommand_Demo(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	outFile := filepath.Join(t.TempDir(), "resume.txt")

	stdout, stderr, err := executeCommand(t, "tailor", "--demo", "--template", "minimal", "--out", outFile)
	require.NoError(t, err)

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "[ 20%] Analyzing LinkedIn profile...")
	assert.Contains(t, stderr, "[100%] Finalizing resume...")
	assert.Contains(t, stderr, "Tailoring mode: fallback")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ALEX MORGAN")
}

func TestTailorCommand_DemoJSON(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	stdout, _, err := executeCommand(t, "tailor", "--demo", "--json")
	require.NoError(t, err)

	var result pipeline.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.True(t, result.Demo)
	assert.Equal(t, "Senior Full-Stack Engineer", result.JobPosting.Title)
	require.NotNil(t, result.Tailored)
	assert.NotEmpty(t, result.Tailored.TailoredProfile.Skills)
}

func TestTailorCommand_Errors(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown template", []string{"tailor", "--demo", "--template", "fancy"}, "unknown template"},
		{"missing urls", []string{"tailor"}, "LinkedIn URL is required"},
		{"bad job url", []string{"tailor", "--profile-url", "https://www.linkedin.com/in/jane-doe", "--job-url", "https://example.com/about"}, "valid job posting URL"},
		{"missing api key", []string{"tailor", "--profile-url", "https://www.linkedin.com/in/jane-doe", "--job-url", "https://jobs.lever.co/acme/1"}, "API key is required"},
		{"missing config file", []string{"tailor", "--demo", "--config", "does-not-exist.json"}, "failed to read config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseCommands_RequireURL(t *testing.T) {
	for _, name := range []string{"parse-profile", "parse-job"} {
		t.Run(name, func(t *testing.T) {
			_, _, err := executeCommand(t, name)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "required flag")
		})
	}
}

func TestParseJobCommand_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, _, err := executeCommand(t, "parse-job", "--url", "https://jobs.lever.co/acme/1")

	assert.ErrorIs(t, err, errMissingAPIKey)
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, &pipeline.UserError{
		Message:     "Please enter a valid LinkedIn URL",
		Remediation: []string{"Use a public profile URL"},
	})
	assert.Equal(t, "Error: Please enter a valid LinkedIn URL\n  - Use a public profile URL\n", buf.String())

	buf.Reset()
	printError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestLoadConfig_Precedence(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("PORT", "9090")
	configFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configFile, []byte(`{"api_key": "file-key", "template": "classic"}`), 0o644))

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })
	require.NoError(t, rootCmd.PersistentFlags().Set("config", configFile))

	cfg, err := loadConfig(serveCmd)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "classic", cfg.Template)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 3, cfg.ScrapeAttempts)

	require.NoError(t, rootCmd.PersistentFlags().Set("api-key", "flag-key"))
	cfg, err = loadConfig(serveCmd)
	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.APIKey)
}
