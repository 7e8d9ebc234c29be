package parsing

import (
	"context"
	"errors"
	"strings"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/jonathan/resume-tailor/internal/validation"
	"go.uber.org/zap"
)

// JobExtractor turns a job posting URL into a JobPosting.
// Unlike profiles, postings are never invented: every failure is an *ExtractionError.
type JobExtractor struct {
	Scraper          ingestion.Scraper
	LLM              llm.Client
	Logger           *zap.Logger
	MinContentLength int // zero means DefaultMinContentLength
}

// NewJobExtractor creates a JobExtractor with the default content threshold.
func NewJobExtractor(scraper ingestion.Scraper, client llm.Client, logger *zap.Logger) *JobExtractor {
	return &JobExtractor{
		Scraper:          scraper,
		LLM:              client,
		Logger:           logger,
		MinContentLength: DefaultMinContentLength,
	}
}

// Extract scrapes and structures the posting at url.
func (e *JobExtractor) Extract(ctx context.Context, url string) (*types.JobPosting, error) {
	logger := nopIfNil(e.Logger).With(zap.String("url", url))

	if e.Scraper == nil {
		return nil, &ExtractionError{Kind: KindScrape, URL: url, Message: msgScrape, Cause: errors.New("no scraper configured")}
	}
	result, err := e.Scraper.Scrape(ctx, url)
	if err != nil {
		return nil, &ExtractionError{Kind: KindScrape, URL: url, Message: msgScrape, Cause: err}
	}

	text := ""
	if result != nil {
		text = result.Text
	}
	if len(strings.TrimSpace(text)) < minLength(e.MinContentLength) {
		logger.Warn("job posting content too short", zap.Int("chars", len(text)))
		return nil, &ExtractionError{Kind: KindInsufficientContent, URL: url, Message: msgInsufficientContent}
	}
	if e.LLM == nil {
		return nil, &ExtractionError{Kind: KindGeneration, URL: url, Message: msgGeneration, Cause: errors.New("no generation client configured")}
	}

	prompt := prompts.Format(prompts.MustGet(prompts.ExtractionFile, "extract-job-posting"), map[string]string{
		"URL":     url,
		"Content": validation.SanitizeExternalContent(logger, text, "job posting", url),
	})

	var job types.JobPosting
	if err := llm.GenerateInto(ctx, e.LLM, prompt, llm.JobPostingSchema(), llm.TierStandard, &job); err != nil {
		var apiErr *llm.APICallError
		if errors.As(err, &apiErr) {
			return nil, &ExtractionError{Kind: KindGeneration, URL: url, Message: msgGeneration, Cause: err}
		}
		return nil, &ExtractionError{Kind: KindInvalidOutput, URL: url, Message: msgInvalidOutput, Cause: err}
	}

	NormalizeJobPosting(&job)
	if err := job.Validate(); err != nil {
		return nil, &ExtractionError{Kind: KindMissingFields, URL: url, Message: msgMissingFields, Cause: err}
	}

	logger.Info("job posting extracted",
		zap.String("title", job.Title),
		zap.String("company", job.Company),
		zap.Int("required", len(job.Requirements.Required)),
		zap.Int("skills", len(job.Requirements.Skills)),
		zap.Int("keywords", len(job.Keywords)),
	)
	return &job, nil
}
