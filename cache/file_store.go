// ABOUTME: Filesystem-backed cache store, one JSON file per URL hash
// ABOUTME: Writes go through a temp file and atomic rename
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"credibility-checker/domain"
)

// FileStore persists one JSON file per cached URL under a base directory.
type FileStore struct {
	dir    string
	ttl    time.Duration
	logger *slog.Logger
}

func NewFileStore(dir string, ttl time.Duration, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create cache directory failed: %w", err)
	}

	return &FileStore{
		dir:    dir,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func (s *FileStore) Get(ctx context.Context, url string) (*domain.Article, bool) {
	path := s.entryPath(url)

	data, err := os.ReadFile(path) // #nosec G304 - path derived from URL hash inside the cache dir
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("cache read failed, treating as miss", "url", url, "error", err)
		}
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		s.logger.Warn("cache entry corrupted, treating as miss", "url", url, "error", err)
		return nil, false
	}

	if e.expired(s.ttl, time.Now().UTC()) {
		// Lazy eviction; a failure here only delays the next eviction attempt.
		if err := os.Remove(path); err != nil {
			s.logger.Warn("failed to evict expired cache entry", "url", url, "error", err)
		}
		return nil, false
	}

	article := e.Article
	return &article, true
}

func (s *FileStore) Put(ctx context.Context, url string, article *domain.Article) error {
	e := entry{
		Article:   *article,
		Timestamp: time.Now().UTC(),
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal cache entry failed: %w", err)
	}

	targetPath := s.entryPath(url)
	tempFile := targetPath + ".tmp"

	// Temp file plus rename so a concurrent reader never observes a
	// partially written entry.
	if err := os.WriteFile(tempFile, data, 0600); err != nil {
		return fmt.Errorf("write temp cache file failed: %w", err)
	}

	if err := os.Rename(tempFile, targetPath); err != nil {
		if cleanupErr := os.Remove(tempFile); cleanupErr != nil {
			s.logger.Warn("failed to clean up temp cache file", "file", tempFile, "error", cleanupErr)
		}
		return fmt.Errorf("rename cache file failed: %w", err)
	}

	s.logger.Debug("article cached", "url", url, "path", targetPath)

	return nil
}

func (s *FileStore) Clear(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read cache directory failed: %w", err)
	}

	removed := 0
	for _, dirEntry := range entries {
		if dirEntry.IsDir() || !strings.HasSuffix(dirEntry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.dir, dirEntry.Name())
		if err := os.Remove(path); err != nil {
			s.logger.Warn("failed to remove cache entry", "file", path, "error", err)
			continue
		}
		removed++
	}

	return removed, nil
}

func (s *FileStore) entryPath(url string) string {
	return filepath.Join(s.dir, Key(url)+".json")
}
