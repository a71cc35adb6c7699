// ABOUTME: Per-domain politeness delay for outbound scraping requests
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// DomainLimiter enforces a minimum interval between requests to the same
// host. Different hosts never block each other.
type DomainLimiter struct {
	hosts    map[string]*hostState
	mu       sync.Mutex
	interval time.Duration
}

type hostState struct {
	lastRequest time.Time
	mu          sync.Mutex
}

func NewDomainLimiter(interval time.Duration) *DomainLimiter {
	return &DomainLimiter{
		hosts:    make(map[string]*hostState),
		interval: interval,
	}
}

// Wait blocks until the host may be contacted again, or the context is
// canceled. A zero interval never blocks.
func (l *DomainLimiter) Wait(ctx context.Context, host string) error {
	if l == nil || l.interval <= 0 {
		return nil
	}

	l.mu.Lock()
	state, ok := l.hosts[host]
	if !ok {
		state = &hostState{}
		l.hosts[host] = state
	}
	l.mu.Unlock()

	state.mu.Lock()
	defer state.mu.Unlock()

	if !state.lastRequest.IsZero() {
		remaining := l.interval - time.Since(state.lastRequest)
		if remaining > 0 {
			timer := time.NewTimer(remaining)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	state.lastRequest = time.Now()
	return nil
}
