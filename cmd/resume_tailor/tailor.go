package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/validation"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor a LinkedIn profile to a job posting",
	Long: `Scrapes the LinkedIn profile and the job posting, extracts both into structured form,
rewrites the profile toward the job and renders a resume preview.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runTailor,
}

var (
	tailorProfileURL string
	tailorJobURL     string
	tailorDemo       bool
	tailorTemplate   string
	tailorOut        string
	tailorJSON       bool
)

func init() {
	tailorCmd.Flags().StringVar(&tailorProfileURL, "profile-url", "", "LinkedIn profile URL")
	tailorCmd.Flags().StringVar(&tailorJobURL, "job-url", "", "Job posting URL")
	tailorCmd.Flags().BoolVar(&tailorDemo, "demo", false, "Use the built-in sample profile and job posting")
	tailorCmd.Flags().StringVarP(&tailorTemplate, "template", "t", "", "Preview template: modern, classic or minimal")
	tailorCmd.Flags().StringVarP(&tailorOut, "out", "o", "", "Write the rendered resume to this file instead of stdout")
	tailorCmd.Flags().BoolVar(&tailorJSON, "json", false, "Print the full run result as JSON")

	rootCmd.AddCommand(tailorCmd)
}

//nolint:errcheck // progress and report output; errors are not recoverable
func runTailor(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("profile-url") {
		cfg.ProfileURL = tailorProfileURL
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = tailorJobURL
	}
	if cmd.Flags().Changed("demo") {
		cfg.Demo = tailorDemo
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = tailorTemplate
		if _, ok := rendering.Lookup(cfg.Template); !ok {
			return fmt.Errorf("unknown template: %s", cfg.Template)
		}
	}

	ctx := cmd.Context()
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if !cfg.Demo {
		if err := validation.ValidateURLs(cfg.ProfileURL, cfg.JobURL, cfg.JobURLMatcher()); err != nil {
			return pipeline.Describe(err)
		}
		if err := a.requireModel(); err != nil {
			return err
		}
	}

	stderr := cmd.ErrOrStderr()
	result, err := a.pipeline.Run(ctx, pipeline.RunOptions{
		ProfileURL: cfg.ProfileURL,
		JobURL:     cfg.JobURL,
		Demo:       cfg.Demo,
		JobMatcher: cfg.JobURLMatcher(),
		OnProgress: func(e pipeline.ProgressEvent) {
			fmt.Fprintf(stderr, "[%3d%%] %s\n", e.Progress, e.Message)
		},
	})
	if err != nil {
		return pipeline.Describe(err)
	}

	out := cmd.OutOrStdout()
	if tailorJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	resume, err := rendering.Render(result.Tailored.TailoredProfile, cfg.Template)
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(stderr)
		printer.PrintProfile(result.Profile)
		printer.PrintJobPosting(result.JobPosting)
		printer.PrintInsights(result.Tailored.Insights)
	}
	observability.NewPrinter(stderr).PrintCorrections(result.Tailored.Corrections)

	fmt.Fprintf(stderr, "Tailoring mode: %s\n", result.Tailored.Mode)
	fmt.Fprintf(stderr, "Matched skills: %d of %d\n", len(result.MatchedSkills), len(result.Profile.Skills))

	if tailorOut == "" {
		fmt.Fprint(out, resume)
		return nil
	}
	if err := os.WriteFile(tailorOut, []byte(resume), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(stderr, "Output: %s\n", tailorOut)
	return nil
}
