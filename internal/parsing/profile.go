// Package parsing turns scraped page text into structured profiles and job postings.
package parsing

import (
	"context"
	"strings"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/jonathan/resume-tailor/internal/validation"
	"go.uber.org/zap"
)

// DefaultMinContentLength is the shortest scraped text worth sending to the model.
const DefaultMinContentLength = 50

// ProfileExtractor turns a LinkedIn profile URL into a Profile.
// It never fails: anything that goes wrong yields a placeholder profile.
type ProfileExtractor struct {
	Scraper          ingestion.Scraper
	LLM              llm.Client
	Logger           *zap.Logger
	MinContentLength int // zero means DefaultMinContentLength
}

// NewProfileExtractor creates a ProfileExtractor with the default content threshold.
func NewProfileExtractor(scraper ingestion.Scraper, client llm.Client, logger *zap.Logger) *ProfileExtractor {
	return &ProfileExtractor{
		Scraper:          scraper,
		LLM:              client,
		Logger:           logger,
		MinContentLength: DefaultMinContentLength,
	}
}

// Extract scrapes and structures the profile at url.
func (e *ProfileExtractor) Extract(ctx context.Context, url string) *types.Profile {
	logger := nopIfNil(e.Logger).With(zap.String("url", url))

	profile := e.extract(ctx, url, logger)
	NormalizeProfile(profile)

	logger.Info("profile extracted",
		zap.String("name", profile.Name),
		zap.Int("experience", len(profile.Experience)),
		zap.Int("education", len(profile.Education)),
		zap.Int("skills", len(profile.Skills)),
	)
	return profile
}

func (e *ProfileExtractor) extract(ctx context.Context, url string, logger *zap.Logger) *types.Profile {
	text := scrapeText(ctx, e.Scraper, url, logger)

	if len(strings.TrimSpace(text)) < minLength(e.MinContentLength) {
		logger.Warn("profile content too short, using fallback profile", zap.Int("chars", len(text)))
		return FallbackProfile(url)
	}
	if e.LLM == nil {
		logger.Warn("no generation client configured, using fallback profile")
		return FallbackProfile(url)
	}

	prompt := prompts.Format(prompts.MustGet(prompts.ExtractionFile, "extract-profile"), map[string]string{
		"Content": validation.SanitizeExternalContent(logger, text, "linkedin profile", url),
	})

	var profile types.Profile
	if err := llm.GenerateInto(ctx, e.LLM, prompt, llm.ProfileSchema(), llm.TierStandard, &profile); err != nil {
		logger.Warn("profile generation failed, using fallback profile", zap.Error(err))
		return FallbackProfile(url)
	}

	if strings.TrimSpace(profile.Name) == "" || !profile.HasCompleteExperience() {
		logger.Warn("extracted profile is missing name or experience, using fallback profile")
		return FallbackProfile(url)
	}
	return &profile
}

// scrapeText returns the scraped text, or "" when the scraper fails.
func scrapeText(ctx context.Context, scraper ingestion.Scraper, url string, logger *zap.Logger) string {
	if scraper == nil {
		return ""
	}
	result, err := scraper.Scrape(ctx, url)
	if err != nil {
		logger.Warn("scrape failed", zap.Error(err))
		return ""
	}
	if result == nil {
		return ""
	}
	return result.Text
}

func minLength(n int) int {
	if n <= 0 {
		return DefaultMinContentLength
	}
	return n
}

func nopIfNil(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
