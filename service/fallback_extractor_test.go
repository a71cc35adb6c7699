// ABOUTME: Tests for the HTML fallback extractor against httptest servers
package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credibility-checker/domain"
	"credibility-checker/utils/ratelimit"
)

const longParagraph = "The city council voted on Tuesday to approve the revised transportation budget, a decision that follows months of public hearings and negotiation between district representatives."

const shortParagraph = "Subscribe to our newsletter."

func newFallback(t *testing.T, opts FallbackOptions) Extractor {
	t.Helper()
	if opts.UserAgent == "" {
		opts.UserAgent = "Mozilla/5.0 (test)"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 5 * time.Second
	}
	return NewFallbackExtractor(opts, testLogger())
}

func articlePage() string {
	return `<!DOCTYPE html>
<html><head>
<title>Example Site - Budget approved</title>
<meta property="og:image" content="/images/lead.jpg">
</head><body>
<h1>Budget approved after long debate</h1>
<div class="byline"><span class="author">Jane Reporter</span></div>
<time datetime="2026-03-14T09:00:00Z">March 14, 2026</time>
<article>
<p>` + longParagraph + `</p>
<p>` + shortParagraph + `</p>
<p>` + longParagraph + ` The measure passes with a comfortable margin and takes effect next quarter.</p>
<img src="/images/lead.jpg" alt="council chamber">
<img src="/images/lead.jpg" alt="duplicate">
<img src="data:image/png;base64,AAAA" alt="inline">
</article>
</body></html>`
}

func TestFallbackExtractor_ParsesArticlePage(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(articlePage()))
	}))
	defer srv.Close()

	extractor := newFallback(t, FallbackOptions{UserAgent: "Mozilla/5.0 (test)"})

	article, err := extractor.Extract(context.Background(), srv.URL+"/news/budget")
	require.NoError(t, err)

	assert.Equal(t, "Mozilla/5.0 (test)", gotUA)
	assert.Equal(t, "Budget approved after long debate", article.Title)
	assert.Contains(t, article.Content, longParagraph)
	assert.NotContains(t, article.Content, shortParagraph)
	assert.Equal(t, "Jane Reporter", article.Author)
	require.NotNil(t, article.PublishedAt)
	assert.Equal(t, 2026, article.PublishedAt.Year())

	host := strings.TrimPrefix(srv.URL, "http://")
	assert.Equal(t, strings.Split(host, ":")[0], article.Source)

	// data: image skipped, duplicate collapsed.
	require.Len(t, article.Images, 1)
	assert.Equal(t, srv.URL+"/images/lead.jpg", article.Images[0].URL)
	assert.Equal(t, srv.URL+"/images/lead.jpg", article.TopImage)
}

func TestFallbackExtractor_NonOKStatusIsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	extractor := newFallback(t, FallbackOptions{})

	_, err := extractor.Extract(context.Background(), srv.URL+"/missing")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.FetchHTTPError, fetchErr.Kind)
}

func TestFallbackExtractor_TimeoutIsTimeoutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	extractor := newFallback(t, FallbackOptions{Timeout: 100 * time.Millisecond})

	_, err := extractor.Extract(context.Background(), srv.URL+"/slow")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.FetchTimeout, fetchErr.Kind)
}

func TestFallbackExtractor_UnreachableHostIsHTTPError(t *testing.T) {
	extractor := newFallback(t, FallbackOptions{Timeout: time.Second})

	_, err := extractor.Extract(context.Background(), "http://127.0.0.1:1/never")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.FetchHTTPError, fetchErr.Kind)
}

func TestFallbackExtractor_NoContentIsParseFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Empty</title></head><body><nav>menu</nav></body></html>`))
	}))
	defer srv.Close()

	extractor := newFallback(t, FallbackOptions{})

	_, err := extractor.Extract(context.Background(), srv.URL+"/empty")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.FetchParseFailure, fetchErr.Kind)
}

func TestFallbackExtractor_TitleFallsBackToTitleTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Headline from title tag</title></head><body><p>` + longParagraph + `</p></body></html>`))
	}))
	defer srv.Close()

	extractor := newFallback(t, FallbackOptions{})

	article, err := extractor.Extract(context.Background(), srv.URL+"/no-h1")
	require.NoError(t, err)
	assert.Equal(t, "Headline from title tag", article.Title)
}

func TestFallbackExtractor_RespectsRobots(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(articlePage()))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	extractor := newFallback(t, FallbackOptions{RespectRobots: true})

	_, err := extractor.Extract(context.Background(), srv.URL+"/private/article")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRobotsDisallowed)

	_, err = extractor.Extract(context.Background(), srv.URL+"/public/article")
	assert.NoError(t, err)
}

func TestFallbackExtractor_PolitenessDelayBetweenRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(articlePage()))
	}))
	defer srv.Close()

	extractor := newFallback(t, FallbackOptions{
		Limiter: ratelimit.NewDomainLimiter(100 * time.Millisecond),
	})

	_, err := extractor.Extract(context.Background(), srv.URL+"/a")
	require.NoError(t, err)

	start := time.Now()
	_, err = extractor.Extract(context.Background(), srv.URL+"/b")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}
