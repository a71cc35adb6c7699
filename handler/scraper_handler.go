// ABOUTME: HTTP handlers for the raw scraping endpoints
// ABOUTME: Exposes single-article scrape, batch scrape and cache clearing
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"credibility-checker/cache"
	"credibility-checker/domain"
	"credibility-checker/service"
)

// ScrapeRequest represents the request body for a single-article scrape
type ScrapeRequest struct {
	URL string `json:"url"`
}

// BatchScrapeRequest represents the request body for a batch scrape
type BatchScrapeRequest struct {
	URLs []string `json:"urls"`
}

// ArticleResponse is the wire form of a scraped article
type ArticleResponse struct {
	Success     bool     `json:"success"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	PublishDate string   `json:"publish_date,omitempty"`
	Authors     string   `json:"authors,omitempty"`
	Images      []string `json:"images"`
	TopImage    string   `json:"top_image,omitempty"`
	Source      string   `json:"source"`
	URL         string   `json:"url"`
	Cached      bool     `json:"cached,omitempty"`
}

// BatchScrapeResult is one element of a batch scrape response
type BatchScrapeResult struct {
	URL     string           `json:"url"`
	Success bool             `json:"success"`
	Data    *ArticleResponse `json:"data,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// ScraperHandler handles article scraping requests
type ScraperHandler struct {
	fetcher service.ArticleFetcher
	batch   service.BatchCoordinator
	store   cache.Store
	logger  *slog.Logger
}

// NewScraperHandler creates a new scraper handler
func NewScraperHandler(fetcher service.ArticleFetcher, batch service.BatchCoordinator, store cache.Store, logger *slog.Logger) *ScraperHandler {
	return &ScraperHandler{
		fetcher: fetcher,
		batch:   batch,
		store:   store,
		logger:  logger,
	}
}

// HandleScrapeArticle handles POST /api/v1/scraper/scrape-article requests
func (h *ScraperHandler) HandleScrapeArticle(c echo.Context) error {
	ctx := c.Request().Context()

	var req ScrapeRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	article, err := h.fetcher.FetchArticle(ctx, req.URL)
	if err != nil {
		return fetchErrorToHTTP(err, h.logger)
	}

	return c.JSON(http.StatusOK, articleToResponse(article))
}

// HandleScrapeBatch handles POST /api/v1/scraper/scrape-batch requests
func (h *ScraperHandler) HandleScrapeBatch(c echo.Context) error {
	ctx := c.Request().Context()

	var req BatchScrapeRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	results, err := h.batch.FetchBatch(ctx, req.URLs)
	if err != nil {
		return fetchErrorToHTTP(err, h.logger)
	}

	out := make([]BatchScrapeResult, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			out = append(out, BatchScrapeResult{
				URL:   r.URL,
				Error: r.Err.Error(),
			})
			continue
		}
		out = append(out, BatchScrapeResult{
			URL:     r.URL,
			Success: true,
			Data:    articleToResponse(r.Article),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"results": out,
	})
}

// HandleClearCache handles POST /api/v1/scraper/clear-cache requests
func (h *ScraperHandler) HandleClearCache(c echo.Context) error {
	ctx := c.Request().Context()

	removed, err := h.store.Clear(ctx)
	if err != nil {
		h.logger.Error("failed to clear cache", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to clear cache")
	}

	h.logger.Info("cache cleared", "removed", removed)

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Cleared %d cached items", removed),
	})
}

func articleToResponse(article *domain.Article) *ArticleResponse {
	resp := &ArticleResponse{
		Success:  true,
		Title:    article.Title,
		Content:  article.Content,
		Authors:  article.Author,
		Images:   make([]string, 0, len(article.Images)),
		TopImage: article.TopImage,
		Source:   article.Source,
		URL:      article.URL,
		Cached:   article.Cached,
	}
	for _, img := range article.Images {
		resp.Images = append(resp.Images, img.URL)
	}
	if article.PublishedAt != nil {
		resp.PublishDate = article.PublishedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// fetchErrorToHTTP maps domain failures onto HTTP statuses: validation
// errors are the caller's fault, upstream fetch failures are gateway
// errors.
func fetchErrorToHTTP(err error, logger *slog.Logger) error {
	if domain.IsValidationError(err) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) {
		logger.Warn("article fetch failed", "kind", string(fetchErr.Kind), "url", fetchErr.URL)
		switch fetchErr.Kind {
		case domain.FetchTimeout:
			return echo.NewHTTPError(http.StatusGatewayTimeout, "Upstream fetch timed out")
		default:
			return echo.NewHTTPError(http.StatusBadGateway, "Failed to fetch article")
		}
	}

	logger.Error("unexpected fetch error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
}
