package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/validation"
)

var validateURLsCmd = &cobra.Command{
	Use:   "validate-urls",
	Short: "Check a profile URL and a job posting URL without scraping them",
	RunE:  runValidateURLs,
}

var (
	validateProfileURL string
	validateJobURL     string
)

func init() {
	validateURLsCmd.Flags().StringVar(&validateProfileURL, "profile-url", "", "LinkedIn profile URL")
	validateURLsCmd.Flags().StringVar(&validateJobURL, "job-url", "", "Job posting URL")

	rootCmd.AddCommand(validateURLsCmd)
}

//nolint:errcheck // report output; errors are not recoverable
func runValidateURLs(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	profileErr := validation.CheckProfileURL(validateProfileURL)
	jobErr := validation.CheckJobURL(validateJobURL, cfg.JobURLMatcher())

	for _, check := range []struct {
		label string
		err   error
	}{
		{"Profile URL", profileErr},
		{"Job URL", jobErr},
	} {
		if check.err == nil {
			fmt.Fprintf(out, "✓ %s is valid\n", check.label)
			continue
		}
		fmt.Fprintf(out, "✗ %s: %s\n", check.label, pipeline.Describe(check.err).Message)
	}

	if profileErr != nil {
		return profileErr
	}
	return jobErr
}
