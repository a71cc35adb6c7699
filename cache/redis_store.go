// ABOUTME: Redis-backed cache store, SET with TTL per URL hash
// ABOUTME: Selected with CACHE_BACKEND=redis; the TTL is enforced by redis itself
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"credibility-checker/domain"
)

const redisKeyPrefix = "article:"

// RedisStore keeps cache entries in redis with a server-side expiry.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisStore(redisURL string, ttl time.Duration, logger *slog.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL failed: %w", err)
	}

	return &RedisStore{
		client: redis.NewClient(opt),
		ttl:    ttl,
		logger: logger,
	}, nil
}

func (s *RedisStore) Get(ctx context.Context, url string) (*domain.Article, bool) {
	data, err := s.client.Get(ctx, redisKeyPrefix+Key(url)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("redis cache read failed, treating as miss", "url", url, "error", err)
		}
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		s.logger.Warn("redis cache entry corrupted, treating as miss", "url", url, "error", err)
		return nil, false
	}

	// Redis expires keys on its own; the timestamp check covers entries
	// written with a longer TTL by an older configuration.
	if e.expired(s.ttl, time.Now().UTC()) {
		return nil, false
	}

	article := e.Article
	return &article, true
}

func (s *RedisStore) Put(ctx context.Context, url string, article *domain.Article) error {
	e := entry{
		Article:   *article,
		Timestamp: time.Now().UTC(),
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal cache entry failed: %w", err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+Key(url), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis cache write failed: %w", err)
	}

	return nil
}

func (s *RedisStore) Clear(ctx context.Context) (int, error) {
	removed := 0

	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Warn("failed to remove cache entry", "key", iter.Val(), "error", err)
			continue
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("redis scan failed: %w", err)
	}

	return removed, nil
}

// Close releases the underlying redis connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
