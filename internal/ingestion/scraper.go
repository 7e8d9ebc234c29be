// Package ingestion turns page URLs into cleaned text for the extractors.
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-tailor/internal/fetch"
	"go.uber.org/zap"
)

// ErrEmptyContent is returned when a page yields no usable text.
var ErrEmptyContent = errors.New("scraped page has no content")

// ScrapeResult is the text of one page plus what is known about where it came from.
type ScrapeResult struct {
	Text     string
	Metadata *Metadata
}

// Scraper fetches a page and returns its main content as text.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*ScrapeResult, error)
}

// ScrapeFunc adapts a plain function to the Scraper interface.
type ScrapeFunc func(ctx context.Context, url string) (*ScrapeResult, error)

// Scrape calls f(ctx, url).
func (f ScrapeFunc) Scrape(ctx context.Context, url string) (*ScrapeResult, error) {
	return f(ctx, url)
}

// BrowserFunc renders a URL and returns the final HTML.
type BrowserFunc func(ctx context.Context, url string, timeout time.Duration, logger *zap.Logger) (string, error)

// PageScraper scrapes pages over HTTP, converting the main content to Markdown.
// When UseBrowser is set, pages that yield too little text are re-rendered headlessly.
type PageScraper struct {
	Options        *fetch.Options
	UseBrowser     bool
	BrowserTimeout time.Duration
	Browser        BrowserFunc // defaults to fetch.WithBrowser
	Logger         *zap.Logger
}

// NewPageScraper creates a PageScraper with default fetch options.
func NewPageScraper(useBrowser bool, logger *zap.Logger) *PageScraper {
	return &PageScraper{
		Options:    fetch.DefaultOptions(),
		UseBrowser: useBrowser,
		Logger:     logger,
	}
}

// Scrape implements Scraper.
func (s *PageScraper) Scrape(ctx context.Context, url string) (*ScrapeResult, error) {
	logger := s.logger()
	platform := fetch.DetectPlatform(url)
	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	logger.Debug("scraping page", zap.String("url", url), zap.String("platform", string(platform)))

	var (
		html       string
		statusCode int
		text       string
	)

	result, fetchErr := fetch.URL(ctx, url, s.Options)
	if result != nil {
		statusCode = result.StatusCode
	}
	if fetchErr == nil {
		html = result.HTML
		md, err := fetch.ExtractMainMarkdown(html, contentSelectors, noiseSelectors...)
		if err != nil {
			return nil, fmt.Errorf("content extraction failed for %s: %w", url, err)
		}
		text = md
	} else if !s.UseBrowser {
		return nil, fetchErr
	}

	usedBrowser := false
	if s.UseBrowser && fetch.ShouldUseBrowser(text) {
		logger.Debug("content too short, rendering in browser",
			zap.String("url", url),
			zap.Int("chars", len(text)),
			zap.Error(fetchErr),
		)
		rendered, err := s.browser()(ctx, url, s.BrowserTimeout, logger)
		switch {
		case err != nil && fetchErr != nil:
			return nil, fmt.Errorf("%w (browser fallback: %v)", fetchErr, err)
		case err != nil:
			logger.Warn("browser rendering failed, keeping HTTP content", zap.String("url", url), zap.Error(err))
		default:
			md, extractErr := fetch.ExtractMainMarkdown(rendered, contentSelectors, noiseSelectors...)
			if extractErr == nil && len(strings.TrimSpace(md)) > len(strings.TrimSpace(text)) {
				html, text, usedBrowser = rendered, md, true
			}
		}
	}

	cleaned := CleanText(text)
	info := fetch.ExtractPageInfo(html)

	metadata := NewMetadata(cleaned, url)
	metadata.Platform = string(platform)
	metadata.Title = info.Title
	metadata.Description = info.Description
	metadata.StatusCode = statusCode
	metadata.UsedBrowser = usedBrowser

	logger.Debug("scraped page",
		zap.String("url", url),
		zap.Int("chars", len(cleaned)),
		zap.Bool("browser", usedBrowser),
	)

	return &ScrapeResult{Text: cleaned, Metadata: metadata}, nil
}

func (s *PageScraper) browser() BrowserFunc {
	if s.Browser != nil {
		return s.Browser
	}
	return fetch.WithBrowser
}

func (s *PageScraper) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
