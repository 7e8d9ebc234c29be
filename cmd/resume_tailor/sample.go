package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/sample"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the built-in sample profile and job posting",
	RunE: func(cmd *cobra.Command, _ []string) error {
		profile, job := sample.Pair()
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"profile_url": sample.ProfileURL,
			"job_url":     sample.JobURL,
			"profile":     profile,
			"job_posting": job,
		})
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
