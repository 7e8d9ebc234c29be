package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/pipeline"
)

var parseProfileCmd = &cobra.Command{
	Use:   "parse-profile",
	Short: "Extract a LinkedIn profile into structured Profile JSON",
	Long:  "Scrape a public LinkedIn profile and extract it into Profile JSON. Pages that cannot be read yield a placeholder profile.",
	RunE:  runParseProfile,
}

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Extract a job posting into structured JobPosting JSON",
	Long:  "Scrape a job posting and extract it into JobPosting JSON that validates against the job_posting schema.",
	RunE:  runParseJob,
}

var (
	parseProfileURL string
	parseJobURL     string
)

func init() {
	parseProfileCmd.Flags().StringVar(&parseProfileURL, "url", "", "LinkedIn profile URL (required)")
	_ = parseProfileCmd.MarkFlagRequired("url")
	parseJobCmd.Flags().StringVar(&parseJobURL, "url", "", "Job posting URL (required)")
	_ = parseJobCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(parseProfileCmd)
	rootCmd.AddCommand(parseJobCmd)
}

func runParseProfile(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.requireModel(); err != nil {
		return err
	}

	profile := a.profiles.Extract(cmd.Context(), parseProfileURL)
	return writeJSON(cmd.OutOrStdout(), profile)
}

func runParseJob(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.requireModel(); err != nil {
		return err
	}

	job, err := a.jobs.Extract(cmd.Context(), parseJobURL)
	if err != nil {
		return pipeline.Describe(err)
	}
	return writeJSON(cmd.OutOrStdout(), job)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}
