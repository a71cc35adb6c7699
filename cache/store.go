// ABOUTME: Key/value article cache keyed by a hash of the source URL
// ABOUTME: Entries older than the TTL are treated as absent on read
package cache

import (
	"context"
	"crypto/md5" // #nosec G401 - cache key derivation, not a security boundary
	"encoding/hex"
	"time"

	"credibility-checker/domain"
)

//go:generate mockgen -source=store.go -destination=../test/mocks/store_mocks.go -package=mocks

// Store persists fetched articles keyed by source URL. Get never surfaces
// storage errors; any failure is reported as a miss so the fetch pipeline
// can proceed.
type Store interface {
	Get(ctx context.Context, url string) (*domain.Article, bool)
	Put(ctx context.Context, url string, article *domain.Article) error
	Clear(ctx context.Context) (int, error)
}

// entry is the persisted representation: the article payload plus the
// storage timestamp used for TTL checks. Embedding keeps the on-disk JSON
// flat, matching one record per URL.
type entry struct {
	domain.Article
	Timestamp time.Time `json:"timestamp"`
}

func (e *entry) expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(e.Timestamp) > ttl
}

// Key derives the storage key for a URL.
func Key(url string) string {
	sum := md5.Sum([]byte(url)) // #nosec G401
	return hex.EncodeToString(sum[:])
}
