package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/tailoring"
)

// errMissingAPIKey is returned by commands that need the model but have no key
var errMissingAPIKey = fmt.Errorf("API key is required (set %s environment variable or use --api-key flag)", config.EnvAPIKey)

// loadConfig merges flags, the config file, the environment and defaults, in decreasing precedence.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *fileCfg
	}

	if apiKeyFlag != "" {
		cfg.APIKey = apiKeyFlag
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = useBrowser
	}
	cfg.ApplyEnv()
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// app is the wired dependency graph shared by the commands
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	client   *llm.GeminiClient // nil without an API key
	profiles *parsing.ProfileExtractor
	jobs     *parsing.JobExtractor
	pipeline *pipeline.Pipeline
}

// newApp builds the pipeline. Without an API key the extractors and the tailoring
// engine run without a model, which is enough for demo mode.
func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	logger := observability.MustLogger(cfg.Verbose)

	a := &app{cfg: cfg, logger: logger}

	var client llm.Client
	if cfg.APIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		a.client = gemini
		client = gemini
	}

	page := ingestion.NewPageScraper(cfg.UseBrowser, logger)
	scraper := ingestion.NewRetryingScraper(page, logger)
	if cfg.ScrapeAttempts > 0 {
		scraper.Attempts = cfg.ScrapeAttempts
	}
	scraper.BaseDelay = cfg.Backoff()

	a.profiles = parsing.NewProfileExtractor(scraper, client, logger)
	a.jobs = parsing.NewJobExtractor(scraper, client, logger)
	if cfg.MinContentLength > 0 {
		a.profiles.MinContentLength = cfg.MinContentLength
		a.jobs.MinContentLength = cfg.MinContentLength
	}

	a.pipeline = pipeline.New(a.profiles, a.jobs, tailoring.NewEngine(client, logger), logger)
	return a, nil
}

// requireModel fails fast for commands that cannot do anything useful without the model.
func (a *app) requireModel() error {
	if a.client == nil {
		return errMissingAPIKey
	}
	return nil
}

func (a *app) Close() {
	if a.client != nil {
		_ = a.client.Close()
	}
	_ = a.logger.Sync()
}
