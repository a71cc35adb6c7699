// ABOUTME: HTTP handlers for the credibility checking endpoints
// ABOUTME: check-url, check-text, batch-check and the fact-check stub
package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"credibility-checker/domain"
	"credibility-checker/repository"
	"credibility-checker/service"
)

// contentPreviewLength bounds article content echoed back in responses.
const contentPreviewLength = 300

// CheckURLRequest represents the request body for a URL credibility check
type CheckURLRequest struct {
	URL string `json:"url"`
}

// CheckTextRequest represents the request body for a raw-text credibility check
type CheckTextRequest struct {
	Text   string `json:"text"`
	Title  string `json:"title"`
	Source string `json:"source"`
}

// BatchCheckRequest represents the request body for a batch credibility check
type BatchCheckRequest struct {
	URLs []string `json:"urls"`
}

// FactCheckRequest represents the request body for a claim lookup
type FactCheckRequest struct {
	Claim string `json:"claim"`
}

// CredibilityHandler handles credibility analysis requests
type CredibilityHandler struct {
	fetcher  service.ArticleFetcher
	analyzer service.CredibilityAnalyzer
	batch    service.BatchCoordinator
	claims   repository.ClaimLookupRepository
	logger   *slog.Logger
}

// NewCredibilityHandler creates a new credibility handler
func NewCredibilityHandler(
	fetcher service.ArticleFetcher,
	analyzer service.CredibilityAnalyzer,
	batch service.BatchCoordinator,
	claims repository.ClaimLookupRepository,
	logger *slog.Logger,
) *CredibilityHandler {
	return &CredibilityHandler{
		fetcher:  fetcher,
		analyzer: analyzer,
		batch:    batch,
		claims:   claims,
		logger:   logger,
	}
}

// HandleCheckURL handles POST /api/v1/check-url requests
func (h *CredibilityHandler) HandleCheckURL(c echo.Context) error {
	ctx := c.Request().Context()

	var req CheckURLRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	article, err := h.fetcher.FetchArticle(ctx, req.URL)
	if err != nil {
		return fetchErrorToHTTP(err, h.logger)
	}

	result := h.analyzer.Analyze(article)

	h.logger.Info("url credibility checked",
		"url", req.URL,
		"score", result.Score,
		"label", result.Label.Text)

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"title":            article.Title,
			"content":          truncateContent(article.Content),
			"source":           article.Source,
			"url":              article.URL,
			"cached":           article.Cached,
			"credibilityScore": result.Score,
			"credibilityLabel": result.Label,
			"analysisDetails":  result.Details,
			"factors":          result.Factors,
			"scrapedAt":        time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// HandleCheckText handles POST /api/v1/check-text requests
func (h *CredibilityHandler) HandleCheckText(c echo.Context) error {
	var req CheckTextRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if strings.TrimSpace(req.Text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, domain.ErrTextRequired.Error())
	}

	source := req.Source
	if source == "" {
		source = "unknown"
	}

	result := h.analyzer.Analyze(&domain.Article{
		Title:   req.Title,
		Content: req.Text,
		Source:  source,
	})

	h.logger.Info("text credibility checked",
		"source", source,
		"score", result.Score,
		"label", result.Label.Text)

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"title":            req.Title,
			"source":           source,
			"credibilityScore": result.Score,
			"credibilityLabel": result.Label,
			"analysisDetails":  result.Details,
			"factors":          result.Factors,
			"analyzedAt":       time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// BatchCheckResult is one element of a batch credibility response
type BatchCheckResult struct {
	URL     string         `json:"url"`
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// HandleBatchCheck handles POST /api/v1/batch-check requests
func (h *CredibilityHandler) HandleBatchCheck(c echo.Context) error {
	ctx := c.Request().Context()

	var req BatchCheckRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	results, err := h.batch.FetchBatch(ctx, req.URLs)
	if err != nil {
		return fetchErrorToHTTP(err, h.logger)
	}

	out := make([]BatchCheckResult, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			out = append(out, BatchCheckResult{
				URL:   r.URL,
				Error: r.Err.Error(),
			})
			continue
		}

		analysis := h.analyzer.Analyze(r.Article)
		out = append(out, BatchCheckResult{
			URL:     r.URL,
			Success: true,
			Data: map[string]any{
				"title":            r.Article.Title,
				"source":           r.Article.Source,
				"credibilityScore": analysis.Score,
				"credibilityLabel": analysis.Label.Text,
			},
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"results": out,
	})
}

// HandleFactCheck handles POST /api/v1/fact-check requests
func (h *CredibilityHandler) HandleFactCheck(c echo.Context) error {
	ctx := c.Request().Context()

	var req FactCheckRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if strings.TrimSpace(req.Claim) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, domain.ErrClaimRequired.Error())
	}

	result, err := h.claims.LookupClaim(ctx, req.Claim)
	if err != nil {
		h.logger.Error("claim lookup failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Fact check lookup failed")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    result,
	})
}

func truncateContent(content string) string {
	runes := []rune(content)
	if len(runes) <= contentPreviewLength {
		return content
	}
	return string(runes[:contentPreviewLength]) + "..."
}
