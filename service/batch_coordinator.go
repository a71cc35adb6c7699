// ABOUTME: Bounded-concurrency fan-out of article fetches for batch requests
package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"credibility-checker/domain"
)

type batchCoordinator struct {
	fetcher     ArticleFetcher
	maxURLs     int
	concurrency int
	logger      *slog.Logger
}

// NewBatchCoordinator caps batch size at maxURLs and fans fetches out across
// at most concurrency workers.
func NewBatchCoordinator(fetcher ArticleFetcher, maxURLs, concurrency int, logger *slog.Logger) BatchCoordinator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &batchCoordinator{
		fetcher:     fetcher,
		maxURLs:     maxURLs,
		concurrency: concurrency,
		logger:      logger,
	}
}

// FetchBatch resolves every URL and returns results in input order. A batch
// over the cap is rejected whole, before any fetch starts. Per-URL failures
// land in their result slot and never cancel sibling fetches.
func (b *batchCoordinator) FetchBatch(ctx context.Context, urls []string) ([]BatchResult, error) {
	if len(urls) == 0 {
		return nil, domain.ErrBatchEmpty
	}

	if len(urls) > b.maxURLs {
		return nil, fmt.Errorf("%w: got %d URLs, maximum is %d", domain.ErrBatchTooLarge, len(urls), b.maxURLs)
	}

	results := make([]BatchResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, u := range urls {
		g.Go(func() error {
			article, err := b.fetcher.FetchArticle(gctx, u)
			results[i] = BatchResult{URL: u, Article: article, Err: err}
			// Element errors are part of the result set, not group errors.
			return nil
		})
	}

	// Workers never return errors, so this only propagates a panic-free nil.
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	b.logger.Info("batch fetch complete",
		slog.Int("total", len(urls)),
		slog.Int("failed", failed))

	return results, nil
}
