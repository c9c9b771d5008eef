// Package ratelimit implements the sliding-window submission limiter used
// by the hire-request flow: a rolling list of submission timestamps, pruned
// to the window, capped at the limit.
package ratelimit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/providers"
)

// Hire-form budget: two submissions per rolling hour per client.
const (
	HireLimit  = 2
	HireWindow = time.Hour
)

// Window is a sliding-window limiter keyed by client. State lives in the
// CacheProvider when one is wired, so the budget survives restarts and is
// shared across replicas; otherwise an in-process map serves single-node
// deployments.
type Window struct {
	limit  int
	window time.Duration
	cache  providers.CacheProvider
	now    func() time.Time

	mu    sync.Mutex
	local map[string][]int64
}

// New creates a limiter. cache may be nil.
func New(limit int, window time.Duration, cache providers.CacheProvider) *Window {
	return &Window{
		limit:  limit,
		window: window,
		cache:  cache,
		now:    time.Now,
		local:  make(map[string][]int64),
	}
}

// WithClock overrides the clock. Test hook.
func (w *Window) WithClock(now func() time.Time) *Window {
	w.now = now
	return w
}

// Allow records an attempt for key and reports whether it is within
// budget. Timestamps older than the window are pruned first; a rejected
// attempt is not recorded, so probing does not extend the lockout.
func (w *Window) Allow(ctx context.Context, key string) bool {
	now := w.now().UnixMilli()
	cutoff := now - w.window.Milliseconds()

	if w.cache == nil {
		return w.allowLocal(key, now, cutoff)
	}

	var stamps []int64
	if data, err := w.cache.Get(ctx, "ratelimit:"+key); err == nil {
		// Corrupt state reads as empty, never as an error to the caller.
		_ = json.Unmarshal(data, &stamps)
	}

	stamps = prune(stamps, cutoff)
	if len(stamps) >= w.limit {
		return false
	}

	stamps = append(stamps, now)
	if data, err := json.Marshal(stamps); err == nil {
		// Storage failure degrades to allowing the attempt; the next read
		// simply sees fewer stamps.
		_ = w.cache.Set(ctx, "ratelimit:"+key, data, int(w.window.Seconds()))
	}
	return true
}

func (w *Window) allowLocal(key string, now, cutoff int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	stamps := prune(w.local[key], cutoff)
	if len(stamps) >= w.limit {
		w.local[key] = stamps
		return false
	}
	w.local[key] = append(stamps, now)
	return true
}

func prune(stamps []int64, cutoff int64) []int64 {
	out := stamps[:0]
	for _, s := range stamps {
		if s > cutoff {
			out = append(out, s)
		}
	}
	return out
}
