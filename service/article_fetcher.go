// ABOUTME: Article fetch orchestration: cache, primary worker, HTML fallback
// ABOUTME: Also owns URL validation, including SSRF checks on host and port
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strings"

	"credibility-checker/cache"
	"credibility-checker/domain"
)

// URL scheme constants
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

type articleFetcher struct {
	store    cache.Store
	primary  Extractor
	fallback Extractor
	logger   *slog.Logger
}

// NewArticleFetcher builds the fetch pipeline. primary may be nil, in which
// case every miss goes straight to the fallback.
func NewArticleFetcher(store cache.Store, primary, fallback Extractor, logger *slog.Logger) ArticleFetcher {
	return &articleFetcher{
		store:    store,
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (s *articleFetcher) FetchArticle(ctx context.Context, urlStr string) (*domain.Article, error) {
	if err := s.ValidateURL(urlStr); err != nil {
		return nil, err
	}

	if article, ok := s.store.Get(ctx, urlStr); ok {
		s.logger.Info("cache hit", slog.String("url", urlStr))
		article.Cached = true
		return article, nil
	}

	article, primaryErr := s.extractPrimary(ctx, urlStr)
	if primaryErr != nil {
		s.logger.Warn("primary extraction failed, trying fallback",
			slog.String("url", urlStr),
			slog.String("error", primaryErr.Error()))

		var fallbackErr error
		article, fallbackErr = s.fallback.Extract(ctx, urlStr)
		if fallbackErr != nil {
			s.logger.Error("all extraction strategies failed",
				slog.String("url", urlStr),
				slog.String("primary_error", primaryErr.Error()),
				slog.String("fallback_error", fallbackErr.Error()))
			return nil, fallbackErr
		}
	}

	// Cache failures degrade to uncached operation.
	if err := s.store.Put(ctx, urlStr, article); err != nil {
		s.logger.Warn("failed to cache article",
			slog.String("url", urlStr),
			slog.String("error", err.Error()))
	}

	return article, nil
}

func (s *articleFetcher) extractPrimary(ctx context.Context, urlStr string) (*domain.Article, error) {
	if s.primary == nil {
		return nil, errors.New("no primary extractor configured")
	}
	return s.primary.Extract(ctx, urlStr)
}

// ValidateURL validates a URL for format and SSRF safety.
func (s *articleFetcher) ValidateURL(urlStr string) error {
	if strings.TrimSpace(urlStr) == "" {
		return domain.ErrURLRequired
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidURL, err.Error())
	}

	if parsedURL.Scheme != SchemeHTTP && parsedURL.Scheme != SchemeHTTPS {
		return fmt.Errorf("%w: only HTTP or HTTPS schemes allowed", domain.ErrInvalidURL)
	}

	if parsedURL.Hostname() == "" {
		return fmt.Errorf("%w: URL must contain a host", domain.ErrInvalidURL)
	}

	if isPrivateHost(parsedURL.Hostname()) {
		return fmt.Errorf("%w: access to private networks not allowed", domain.ErrInvalidURL)
	}

	if port := parsedURL.Port(); port != "" && blockedPorts[port] {
		return fmt.Errorf("%w: access to this port is not allowed", domain.ErrInvalidURL)
	}

	return nil
}

var blockedPorts = map[string]bool{
	"22": true, "23": true, "25": true, "53": true, "110": true,
	"143": true, "993": true, "995": true, "1433": true, "3306": true,
	"5432": true, "6379": true, "11211": true,
}

func isPrivateHost(hostname string) bool {
	ip := net.ParseIP(hostname)
	if ip != nil {
		return isPrivateIPAddress(ip)
	}

	hostname = strings.ToLower(hostname)
	if hostname == "localhost" || strings.HasPrefix(hostname, "127.") {
		return true
	}

	if hostname == "169.254.169.254" || hostname == "metadata.google.internal" {
		return true
	}

	internalSuffixes := []string{".local", ".internal", ".corp", ".lan"}
	for _, suffix := range internalSuffixes {
		if strings.HasSuffix(hostname, suffix) {
			return true
		}
	}

	return false
}

func isPrivateIPAddress(ip net.IP) bool {
	if ip4 := ip.To4(); ip4 != nil {
		switch {
		case ip4[0] == 10:
			return true
		case ip4[0] == 172 && ip4[1] >= 16 && ip4[1] <= 31:
			return true
		case ip4[0] == 192 && ip4[1] == 168:
			return true
		case ip4[0] == 127:
			return true
		}
	}

	if ip6 := ip.To16(); ip6 != nil {
		if ip6[0] == 0xfe && ip6[1] == 0x80 {
			return true
		}

		if ip6[0] == 0xfc && ip6[1] == 0x00 {
			return true
		}
	}

	return false
}
