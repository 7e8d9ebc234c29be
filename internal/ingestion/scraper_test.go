package ingestion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-tailor/internal/fetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const postingHTML = `<html>
<head><title>Senior Go Engineer - Acme</title><meta name="description" content="Join Acme"></head>
<body>
	<nav>Home | Jobs</nav>
	<div class="job-description">
		<h2>Requirements</h2>
		<ul><li>5+ years of Go</li><li>PostgreSQL</li></ul>
	</div>
	<form id="application-form">Apply now</form>
</body>
</html>`

func TestPageScraper_Scrape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer server.Close()

	scraper := NewPageScraper(false, zap.NewNop())
	result, err := scraper.Scrape(context.Background(), server.URL+"/jobs/1")
	require.NoError(t, err)

	assert.Contains(t, result.Text, "## Requirements")
	assert.Contains(t, result.Text, "- 5+ years of Go")
	assert.NotContains(t, result.Text, "Apply now")
	assert.NotContains(t, result.Text, "Home | Jobs")

	require.NotNil(t, result.Metadata)
	assert.Equal(t, "Senior Go Engineer - Acme", result.Metadata.Title)
	assert.Equal(t, "Join Acme", result.Metadata.Description)
	assert.Equal(t, http.StatusOK, result.Metadata.StatusCode)
	assert.Equal(t, string(fetch.PlatformUnknown), result.Metadata.Platform)
	assert.False(t, result.Metadata.UsedBrowser)
	assert.Len(t, result.Metadata.Hash, 64)
}

func TestPageScraper_HTTPErrorWithoutBrowser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(999)
	}))
	defer server.Close()

	_, err := NewPageScraper(false, nil).Scrape(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *fetch.Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 999, fetchErr.StatusCode)
}

func TestPageScraper_BrowserFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div id="root"></div></body></html>`))
	}))
	defer server.Close()

	rendered := `<html><body><main><h1>Jane Doe</h1><p>` + strings.Repeat("Built payment systems. ", 40) + `</p></main></body></html>`
	scraper := &PageScraper{
		UseBrowser: true,
		Browser: func(_ context.Context, _ string, _ time.Duration, _ *zap.Logger) (string, error) {
			return rendered, nil
		},
	}

	result, err := scraper.Scrape(context.Background(), server.URL)
	require.NoError(t, err)
	assert.True(t, result.Metadata.UsedBrowser)
	assert.Contains(t, result.Text, "# Jane Doe")
}

func TestPageScraper_BrowserFailureKeepsHTTPContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main><p>Short page</p></main></body></html>`))
	}))
	defer server.Close()

	scraper := &PageScraper{
		UseBrowser: true,
		Browser: func(context.Context, string, time.Duration, *zap.Logger) (string, error) {
			return "", errors.New("chrome not installed")
		},
	}

	result, err := scraper.Scrape(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, result.Metadata.UsedBrowser)
	assert.Equal(t, "Short page", result.Text)
}

func TestPageScraper_BothPathsFail(t *testing.T) {
	scraper := &PageScraper{
		UseBrowser: true,
		Browser: func(context.Context, string, time.Duration, *zap.Logger) (string, error) {
			return "", errors.New("chrome not installed")
		},
	}

	_, err := scraper.Scrape(context.Background(), "not-a-url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "browser fallback")
}
