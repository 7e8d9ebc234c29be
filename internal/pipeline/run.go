// Package pipeline provides the high-level orchestration for a resume tailoring run.
//
// A run is serial: profile extraction, job extraction, skill matching, tailoring and
// finalisation each complete before the next starts, and each emits one progress event.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/sample"
	"github.com/jonathan/resume-tailor/internal/tailoring"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/jonathan/resume-tailor/internal/validation"
)

// Stage names a step of the run
type Stage string

// Stages in execution order
const (
	StageProfile    Stage = "profile"
	StageJob        Stage = "job"
	StageMatching   Stage = "matching"
	StageTailoring  Stage = "tailoring"
	StageFinalizing Stage = "finalizing"
)

// stageInfo is the user-facing label and completion percentage announced when a stage starts
var stageInfo = map[Stage]struct {
	message  string
	progress int
}{
	StageProfile:    {"Analyzing LinkedIn profile...", 20},
	StageJob:        {"Parsing job requirements...", 40},
	StageMatching:   {"Matching skills and experience...", 60},
	StageTailoring:  {"Generating tailored content...", 80},
	StageFinalizing: {"Finalizing resume...", 100},
}

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Stage    Stage  `json:"stage"`
	Message  string `json:"message"`
	Progress int    `json:"progress"`
	RunID    string `json:"run_id"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for one pipeline run
type RunOptions struct {
	ProfileURL string
	JobURL     string
	Demo       bool                      // use the sample pair instead of scraping
	JobMatcher *validation.JobURLMatcher // nil uses the default allow-list
	OnProgress ProgressCallback
}

// Result is everything a run produced
type Result struct {
	RunID         uuid.UUID             `json:"run_id"`
	Profile       *types.Profile        `json:"profile"`
	JobPosting    *types.JobPosting     `json:"job_posting"`
	MatchedSkills []string              `json:"matched_skills"`
	Tailored      *types.TailoredResume `json:"tailored"`
	Demo          bool                  `json:"demo"`
}

// Pipeline wires the extractors and the tailoring engine together.
type Pipeline struct {
	Profiles *parsing.ProfileExtractor
	Jobs     *parsing.JobExtractor
	Tailor   *tailoring.Engine
	Logger   *zap.Logger
}

// New creates a pipeline.
func New(profiles *parsing.ProfileExtractor, jobs *parsing.JobExtractor, tailor *tailoring.Engine, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{Profiles: profiles, Jobs: jobs, Tailor: tailor, Logger: logger}
}

// Run executes one tailoring run. Errors are URL validation failures, job extraction
// failures and nil-input tailoring failures; pass them to Describe for user-facing text.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (*Result, error) {
	runID := uuid.New()
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("run_id", runID.String()))

	emit := func(stage Stage) {
		info := stageInfo[stage]
		logger.Debug("stage started", zap.String("stage", string(stage)), zap.Int("progress", info.progress))
		if opts.OnProgress != nil {
			opts.OnProgress(ProgressEvent{
				Stage:    stage,
				Message:  info.message,
				Progress: info.progress,
				RunID:    runID.String(),
			})
		}
	}

	result := &Result{RunID: runID, Demo: opts.Demo}

	if !opts.Demo {
		if err := validation.ValidateURLs(opts.ProfileURL, opts.JobURL, opts.JobMatcher); err != nil {
			return nil, err
		}
	}

	emit(StageProfile)
	if opts.Demo {
		result.Profile = sample.Profile()
	} else {
		result.Profile = p.Profiles.Extract(ctx, opts.ProfileURL)
	}

	emit(StageJob)
	if opts.Demo {
		result.JobPosting = sample.JobPosting()
	} else {
		job, err := p.Jobs.Extract(ctx, opts.JobURL)
		if err != nil {
			logger.Error("job extraction failed", zap.String("url", opts.JobURL), zap.Error(err))
			return nil, fmt.Errorf("job posting extraction failed: %w", err)
		}
		result.JobPosting = job
	}

	emit(StageMatching)
	result.MatchedSkills = tailoring.MatchedSkills(result.Profile.Skills, result.JobPosting)
	if result.MatchedSkills == nil {
		result.MatchedSkills = []string{}
	}
	logger.Info("skills matched",
		zap.Int("matched", len(result.MatchedSkills)),
		zap.Int("total", len(result.Profile.Skills)),
	)

	emit(StageTailoring)
	tailored, err := p.Tailor.Tailor(ctx, result.Profile, result.JobPosting)
	if err != nil {
		return nil, fmt.Errorf("tailoring failed: %w", err)
	}
	result.Tailored = tailored

	emit(StageFinalizing)
	logger.Info("run completed",
		zap.Bool("demo", opts.Demo),
		zap.String("mode", string(tailored.Mode)),
		zap.Int("corrections", len(tailored.Corrections)),
	)
	return result, nil
}
