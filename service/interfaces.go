// ABOUTME: Service layer interfaces for dependency injection
// ABOUTME: Mocks are generated into test/mocks for handler and service tests
package service

import (
	"context"

	"credibility-checker/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/service_mocks.go -package=mocks

// ArticleFetcher resolves a URL to a normalized Article, consulting the
// cache, then the primary extraction worker, then the HTML fallback.
type ArticleFetcher interface {
	FetchArticle(ctx context.Context, url string) (*domain.Article, error)
	ValidateURL(url string) error
}

// Extractor is a single extraction strategy (primary worker or fallback).
type Extractor interface {
	Extract(ctx context.Context, url string) (*domain.Article, error)
}

// CredibilityAnalyzer converts an article into a bounded, deterministic
// credibility score with an explanation payload.
type CredibilityAnalyzer interface {
	Analyze(article *domain.Article) *domain.CredibilityResult
}

// BatchResult carries the per-URL outcome of a batch fetch. Exactly one of
// Article or Err is set.
type BatchResult struct {
	URL     string
	Article *domain.Article
	Err     error
}

// BatchCoordinator fans URLs out to the fetcher under a concurrency cap,
// preserving input order in the output.
type BatchCoordinator interface {
	FetchBatch(ctx context.Context, urls []string) ([]BatchResult, error)
}
