// ABOUTME: Dependency construction for the credibility checker service
package bootstrap

import (
	"fmt"
	"log/slog"

	"credibility-checker/cache"
	"credibility-checker/config"
	"credibility-checker/handler"
	"credibility-checker/repository"
	"credibility-checker/service"
	"credibility-checker/utils/ratelimit"
)

// Dependencies holds all application dependencies.
type Dependencies struct {
	Config             *config.Config
	Store              cache.Store
	Fetcher            service.ArticleFetcher
	Analyzer           service.CredibilityAnalyzer
	Batch              service.BatchCoordinator
	ScraperHandler     *handler.ScraperHandler
	CredibilityHandler *handler.CredibilityHandler
	Logger             *slog.Logger
}

// BuildDependencies constructs all application dependencies.
// Returns a cleanup function that should be deferred.
func BuildDependencies(log *slog.Logger) (*Dependencies, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	store, cleanup, err := buildCacheStore(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	lexicon, err := buildLexicon(cfg, log)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	analyzer := service.NewCredibilityAnalyzer(lexicon, log)

	var primary service.Extractor
	if cfg.Scraper.Enabled {
		primary = service.NewPrimaryExtractor(cfg.Scraper.Command, cfg.Scraper.Args, cfg.Scraper.Timeout, log)
	}

	fallback := service.NewFallbackExtractor(service.FallbackOptions{
		UserAgent:     cfg.HTTP.UserAgent,
		Timeout:       cfg.HTTP.Timeout,
		MaxBodyBytes:  cfg.HTTP.MaxBodyBytes,
		RespectRobots: cfg.HTTP.RespectRobots,
		Limiter:       ratelimit.NewDomainLimiter(cfg.HTTP.DomainInterval),
	}, log)

	fetcher := service.NewArticleFetcher(store, primary, fallback, log)
	batch := service.NewBatchCoordinator(fetcher, cfg.Batch.MaxURLs, cfg.Batch.Concurrency, log)

	claims := repository.NewClaimLookupStub(log)

	return &Dependencies{
		Config:             cfg,
		Store:              store,
		Fetcher:            fetcher,
		Analyzer:           analyzer,
		Batch:              batch,
		ScraperHandler:     handler.NewScraperHandler(fetcher, batch, store, log),
		CredibilityHandler: handler.NewCredibilityHandler(fetcher, analyzer, batch, claims, log),
		Logger:             log,
	}, cleanup, nil
}

func buildCacheStore(cfg *config.Config, log *slog.Logger) (cache.Store, func(), error) {
	switch cfg.Cache.Backend {
	case "file":
		store, err := cache.NewFileStore(cfg.Cache.Dir, cfg.Cache.TTL, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to init file cache: %w", err)
		}
		return store, func() {}, nil

	case "redis":
		store, err := cache.NewRedisStore(cfg.Cache.RedisURL, cfg.Cache.TTL, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to init redis cache: %w", err)
		}
		cleanup := func() {
			if err := store.Close(); err != nil {
				log.Warn("failed to close redis client", "error", err)
			}
		}
		return store, cleanup, nil

	case "memory":
		return cache.NewMemoryStore(cfg.Cache.TTL), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
	}
}

func buildLexicon(cfg *config.Config, log *slog.Logger) (service.Lexicon, error) {
	if cfg.Analyzer.LexiconPath == "" {
		return service.DefaultLexicon(), nil
	}

	lexicon, err := service.LoadLexicon(cfg.Analyzer.LexiconPath)
	if err != nil {
		return service.Lexicon{}, fmt.Errorf("failed to load lexicon: %w", err)
	}

	log.Info("loaded lexicon override", "path", cfg.Analyzer.LexiconPath)
	return lexicon, nil
}
