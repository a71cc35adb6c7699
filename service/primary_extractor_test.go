// ABOUTME: Tests for the external-worker extractor using shell stand-ins
// ABOUTME: Each test replaces the worker with an sh one-liner
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credibility-checker/domain"
)

func shExtractor(t *testing.T, script string, timeout time.Duration) Extractor {
	t.Helper()
	return NewPrimaryExtractor("sh", []string{"-c", script}, timeout, testLogger())
}

func TestPrimaryExtractor_Success(t *testing.T) {
	script := `read url; printf '{"success":true,"title":"Budget approved","content":"The council approved the budget after a lengthy session.","authors":["Jane Reporter"],"publish_date":"2026-03-14T09:00:00Z","top_image":"https://example.com/a.jpg","images":["https://example.com/a.jpg"],"source":"example.com","url":"'"$url"'"}'`
	extractor := shExtractor(t, script, 5*time.Second)

	article, err := extractor.Extract(context.Background(), "https://example.com/articles/1")
	require.NoError(t, err)

	assert.Equal(t, "Budget approved", article.Title)
	assert.Equal(t, "example.com", article.Source)
	assert.Equal(t, "https://example.com/articles/1", article.URL)
	assert.Equal(t, "Jane Reporter", article.Author)
	assert.Equal(t, "https://example.com/a.jpg", article.TopImage)
	require.Len(t, article.Images, 1)
	require.NotNil(t, article.PublishedAt)
	assert.Equal(t, 2026, article.PublishedAt.Year())
}

func TestPrimaryExtractor_TimeoutKillsWorker(t *testing.T) {
	extractor := shExtractor(t, "sleep 30", 200*time.Millisecond)

	start := time.Now()
	_, err := extractor.Extract(context.Background(), "https://example.com/slow")
	elapsed := time.Since(start)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.FetchTimeout, fetchErr.Kind)
	// The worker must not run to completion.
	assert.Less(t, elapsed, 5*time.Second)
}

func TestPrimaryExtractor_NonzeroExit(t *testing.T) {
	extractor := shExtractor(t, "echo 'boom' >&2; exit 3", 5*time.Second)

	_, err := extractor.Extract(context.Background(), "https://example.com/broken")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.FetchProcessFailure, fetchErr.Kind)
}

func TestPrimaryExtractor_MalformedOutput(t *testing.T) {
	extractor := shExtractor(t, "echo 'not json at all'", 5*time.Second)

	_, err := extractor.Extract(context.Background(), "https://example.com/garbled")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.FetchParseFailure, fetchErr.Kind)
}

func TestPrimaryExtractor_WorkerReportsFailure(t *testing.T) {
	extractor := shExtractor(t, `printf '{"success":false,"error":"paywall detected"}'`, 5*time.Second)

	_, err := extractor.Extract(context.Background(), "https://example.com/paywalled")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.FetchProcessFailure, fetchErr.Kind)
	assert.Contains(t, err.Error(), "paywall detected")
}

func TestPrimaryExtractor_EmptyContentIsFailure(t *testing.T) {
	extractor := shExtractor(t, `printf '{"success":true,"title":"Empty","content":"  "}'`, 5*time.Second)

	_, err := extractor.Extract(context.Background(), "https://example.com/empty")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.FetchProcessFailure, fetchErr.Kind)
}

func TestPrimaryExtractor_MissingBinary(t *testing.T) {
	extractor := NewPrimaryExtractor("/nonexistent/extractor", nil, time.Second, testLogger())

	_, err := extractor.Extract(context.Background(), "https://example.com/x")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.FetchProcessFailure, fetchErr.Kind)
	assert.False(t, errors.Is(err, context.DeadlineExceeded))
}
