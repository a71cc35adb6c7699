// ABOUTME: Echo HTTP server construction and route registration
package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	appmiddleware "credibility-checker/middleware"
)

// NewHTTPServer creates and configures the Echo HTTP server.
func NewHTTPServer(deps *Dependencies, otelEnabled bool, otelServiceName string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Custom error handler for consistent error responses
	e.HTTPErrorHandler = appmiddleware.CustomHTTPErrorHandler(deps.Logger)

	// Add OpenTelemetry tracing middleware
	if otelEnabled {
		e.Use(otelecho.Middleware(otelServiceName))
	}

	// Middleware
	e.Use(appmiddleware.RequestIDMiddleware())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return path == "/health" || path == "/api/v1/health"
		},
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			deps.Logger.InfoContext(ctx, "HTTP request completed",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"error", v.Error)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// API routes
	api := e.Group("/api/v1")
	api.POST("/scraper/scrape-article", deps.ScraperHandler.HandleScrapeArticle)
	api.POST("/scraper/scrape-batch", deps.ScraperHandler.HandleScrapeBatch)
	api.POST("/scraper/clear-cache", deps.ScraperHandler.HandleClearCache)
	api.POST("/check-url", deps.CredibilityHandler.HandleCheckURL)
	api.POST("/check-text", deps.CredibilityHandler.HandleCheckText)
	api.POST("/batch-check", deps.CredibilityHandler.HandleBatchCheck)
	api.POST("/fact-check", deps.CredibilityHandler.HandleFactCheck)
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	return e
}

// StartHTTPServer starts the HTTP server in a goroutine.
func StartHTTPServer(e *echo.Echo, deps *Dependencies, log *slog.Logger) {
	go func() {
		addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
		log.Info("Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()
}
