package ingestion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultAttempts is how many times a page is tried before giving up.
	DefaultAttempts = 3
	// DefaultBaseDelay is multiplied by the attempt number between tries.
	DefaultBaseDelay = time.Second
)

// RetryingScraper retries a Scraper with linear backoff.
// Errors and whitespace-only text both count as failed attempts.
type RetryingScraper struct {
	Scraper   Scraper
	Attempts  int           // below 2 means DefaultAttempts
	BaseDelay time.Duration // zero means DefaultBaseDelay
	Logger    *zap.Logger
}

// NewRetryingScraper wraps s with the default retry policy.
func NewRetryingScraper(s Scraper, logger *zap.Logger) *RetryingScraper {
	return &RetryingScraper{
		Scraper:   s,
		Attempts:  DefaultAttempts,
		BaseDelay: DefaultBaseDelay,
		Logger:    logger,
	}
}

// Scrape implements Scraper. After the last attempt the last failure is returned.
func (r *RetryingScraper) Scrape(ctx context.Context, url string) (*ScrapeResult, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	attempts := r.Attempts
	if attempts < 2 {
		attempts = DefaultAttempts
	}
	delay := r.BaseDelay
	if delay <= 0 {
		delay = DefaultBaseDelay
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := r.Scraper.Scrape(ctx, url)
		if err == nil && (result == nil || strings.TrimSpace(result.Text) == "") {
			err = ErrEmptyContent
		}
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}

		wait := delay * time.Duration(attempt)
		logger.Warn("scrape attempt failed, retrying",
			zap.String("url", url),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("scrape of %s cancelled: %w", url, ctx.Err())
		case <-timer.C:
		}
	}

	return nil, fmt.Errorf("scrape of %s failed after %d attempts: %w", url, attempts, lastErr)
}
