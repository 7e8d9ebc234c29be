package ingestion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// scriptedScraper returns one scripted response per call.
type scriptedScraper struct {
	responses []scriptedResponse
	calls     int
}

type scriptedResponse struct {
	text string
	err  error
}

func (s *scriptedScraper) Scrape(context.Context, string) (*ScrapeResult, error) {
	r := s.responses[s.calls]
	s.calls++
	if r.err != nil {
		return nil, r.err
	}
	return &ScrapeResult{Text: r.text}, nil
}

func TestRetryingScraper_EmptyTwiceThenSuccess(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	inner := &scriptedScraper{responses: []scriptedResponse{
		{text: ""},
		{text: "   \n"},
		{text: "Jane Doe, Staff Engineer"},
	}}
	r := &RetryingScraper{Scraper: inner, Attempts: 3, BaseDelay: time.Millisecond, Logger: zap.New(core)}

	result, err := r.Scrape(context.Background(), "https://linkedin.com/in/jane-doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe, Staff Engineer", result.Text)
	assert.Equal(t, 3, inner.calls)
	assert.Equal(t, 2, logs.Len())
}

func TestRetryingScraper_ReturnsLastError(t *testing.T) {
	errFirst := errors.New("connection reset")
	errLast := errors.New("timeout")
	inner := &scriptedScraper{responses: []scriptedResponse{
		{err: errFirst},
		{err: errLast},
	}}
	r := &RetryingScraper{Scraper: inner, Attempts: 2, BaseDelay: time.Millisecond}

	_, err := r.Scrape(context.Background(), "https://jobs.acme.com/1")
	require.Error(t, err)
	assert.ErrorIs(t, err, errLast)
	assert.NotErrorIs(t, err, errFirst)
	assert.Equal(t, 2, inner.calls)
}

func TestRetryingScraper_AllEmpty(t *testing.T) {
	inner := &scriptedScraper{responses: []scriptedResponse{{}, {}, {}}}
	r := &RetryingScraper{Scraper: inner, BaseDelay: time.Millisecond}

	_, err := r.Scrape(context.Background(), "https://jobs.acme.com/1")
	assert.ErrorIs(t, err, ErrEmptyContent)
	assert.Equal(t, DefaultAttempts, inner.calls)
}

func TestRetryingScraper_FirstAttemptSucceeds(t *testing.T) {
	inner := &scriptedScraper{responses: []scriptedResponse{{text: "content"}}}
	r := NewRetryingScraper(inner, nil)

	result, err := r.Scrape(context.Background(), "https://jobs.acme.com/1")
	require.NoError(t, err)
	assert.Equal(t, "content", result.Text)
	assert.Equal(t, 1, inner.calls)
}

func TestRetryingScraper_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	inner := ScrapeFunc(func(context.Context, string) (*ScrapeResult, error) {
		cancel()
		return nil, errors.New("boom")
	})
	r := &RetryingScraper{Scraper: inner, Attempts: 3, BaseDelay: time.Hour}

	_, err := r.Scrape(ctx, "https://jobs.acme.com/1")
	assert.ErrorIs(t, err, context.Canceled)
}
