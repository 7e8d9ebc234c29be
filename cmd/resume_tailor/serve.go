package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the tailoring pipeline to the wizard UI, with SSE progress streaming.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from PORT env var or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.client == nil {
		a.logger.Warn("no API key configured, only demo runs will produce generated output")
	}

	srv, err := server.New(server.Config{
		Port:              cfg.Port,
		MaxConcurrentRuns: cfg.MaxConcurrentRuns,
		DefaultTemplate:   cfg.Template,
		JobMatcher:        cfg.JobURLMatcher(),
	}, a.pipeline, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	a.logger.Info("serving", zap.Int("port", cfg.Port))
	return srv.Start(cmd.Context())
}
