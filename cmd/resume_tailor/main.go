// Package main provides the resume_tailor command line tool and HTTP server.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "resume_tailor",
	Short: "Tailor a LinkedIn profile to a job posting",
	Long: `Resume Tailor reads a public LinkedIn profile and a job posting, then rewrites the
profile's presentation toward the job without changing any facts: employers, dates,
schools and degrees are restored if the model alters them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	verbose    bool
	apiKeyFlag string
	useBrowser bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	rootCmd.PersistentFlags().BoolVar(&useBrowser, "use-browser", false, "Render pages in a headless browser when plain HTTP yields too little text")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err with remediation hints when it describes a failed run.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func printError(w io.Writer, err error) {
	var userErr *pipeline.UserError
	if !errors.As(err, &userErr) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Error: %s\n", userErr.Message)
	for _, hint := range userErr.Remediation {
		fmt.Fprintf(w, "  - %s\n", hint)
	}
}
