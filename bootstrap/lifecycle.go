// ABOUTME: Application lifecycle: startup, signal handling, graceful shutdown
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"credibility-checker/utils/logger"
	"credibility-checker/utils/otel"
)

// Run is the main application entry point. It initializes all dependencies,
// starts the server, then waits for a shutdown signal.
func Run(ctx context.Context) error {
	// Initialize OpenTelemetry
	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		fmt.Printf("Failed to initialize OpenTelemetry: %v\n", err)
		otelCfg.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			fmt.Printf("Failed to shutdown OpenTelemetry: %v\n", err)
		}
	}()

	// Initialize logger
	log := logger.Init(logger.LoadConfigFromEnv())

	log.Info("Starting credibility checker service",
		"otel_enabled", otelCfg.Enabled,
		"service", otelCfg.ServiceName)

	// Build all dependencies
	deps, cleanup, err := BuildDependencies(log)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}
	defer cleanup()

	httpServer := NewHTTPServer(deps, otelCfg.Enabled, otelCfg.ServiceName)
	StartHTTPServer(httpServer, deps, log)

	log.Info("Credibility checker service started successfully",
		"port", deps.Config.Server.Port,
		"cache_backend", deps.Config.Cache.Backend,
		"scraper_enabled", deps.Config.Scraper.Enabled)

	waitForShutdown(httpServer, deps, log)

	return nil
}

func waitForShutdown(httpServer *echo.Echo, deps *Dependencies, log *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down credibility checker service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), deps.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down HTTP server", "error", err)
	}

	log.Info("Credibility checker service stopped")
}
