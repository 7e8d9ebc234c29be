// Package tailoring rewrites a profile toward a job posting without changing its facts.
//
// The engine asks the generation service for a tailored profile, falls back to a
// deterministic transformation when that fails, and always passes the candidate through
// the fact-preservation validator before producing insights.
package tailoring

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/factcheck"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/types"
)

// ErrNilInput is returned when Tailor is called without a profile or job posting.
var ErrNilInput = errors.New("tailoring requires a profile and a job posting")

// Engine produces tailored resumes.
type Engine struct {
	LLM    llm.Client // optional; nil always uses the deterministic fallback
	Logger *zap.Logger
}

// NewEngine creates a tailoring engine.
func NewEngine(client llm.Client, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{LLM: client, Logger: logger}
}

// Tailor rewrites profile for job. Generation failures never surface as errors:
// the fallback path takes over and insights degrade to defaults.
func (e *Engine) Tailor(ctx context.Context, profile *types.Profile, job *types.JobPosting) (*types.TailoredResume, error) {
	if profile == nil || job == nil {
		return nil, ErrNilInput
	}
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("job_title", job.Title), zap.String("company", job.Company))

	original := profile.Clone()

	mode := types.ModeGenerated
	candidate, err := e.generateProfile(ctx, original, job)
	if err != nil {
		logger.Warn("tailoring generation failed, using fallback", zap.Error(err))
		candidate = FallbackTailor(original, job)
		mode = types.ModeFallback
	}

	tailored, corrections := factcheck.Enforce(original, candidate)
	for _, c := range corrections {
		logger.Warn("restored immutable field",
			zap.String("field", c.Field),
			zap.Int("index", c.Index),
			zap.String("reason", c.Reason),
		)
	}

	insights := e.generateInsights(ctx, original, tailored, job, logger)

	logger.Info("profile tailored",
		zap.String("mode", string(mode)),
		zap.Int("corrections", len(corrections)),
		zap.Int("skills", len(tailored.Skills)),
	)

	return &types.TailoredResume{
		TailoredProfile: tailored,
		Insights:        insights,
		Mode:            mode,
		Corrections:     corrections,
	}, nil
}

func (e *Engine) generateProfile(ctx context.Context, original *types.Profile, job *types.JobPosting) (*types.Profile, error) {
	if e.LLM == nil {
		return nil, errors.New("no generation client configured")
	}
	var candidate types.Profile
	if err := llm.GenerateInto(ctx, e.LLM, buildTailorPrompt(original, job), llm.ProfileSchema(), llm.TierAdvanced, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (e *Engine) generateInsights(ctx context.Context, original, tailored *types.Profile, job *types.JobPosting, logger *zap.Logger) *types.TailoringInsights {
	if e.LLM == nil {
		return MinimalInsights(original, tailored)
	}

	var insights types.TailoringInsights
	err := llm.GenerateInto(ctx, e.LLM, buildInsightsPrompt(original, tailored, job), llm.TailoringInsightsSchema(), llm.TierStandard, &insights)
	if err != nil {
		logger.Warn("insight generation failed, using minimal insights", zap.Error(err))
		return MinimalInsights(original, tailored)
	}

	fillInsightDefaults(&insights, original, tailored)
	return &insights
}
