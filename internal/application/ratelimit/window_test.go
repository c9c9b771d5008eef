package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aplusacademy/tutor-directory/backend/internal/adapters/cache"
	"github.com/aplusacademy/tutor-directory/backend/internal/application/ratelimit"
)

func TestWindow_ThirdAttemptWithinTenMinutesRejected(t *testing.T) {
	clock := time.UnixMilli(1_700_000_000_000)
	w := ratelimit.New(ratelimit.HireLimit, ratelimit.HireWindow, nil).
		WithClock(func() time.Time { return clock })
	ctx := context.Background()

	assert.True(t, w.Allow(ctx, "client-a"))
	clock = clock.Add(5 * time.Minute)
	assert.True(t, w.Allow(ctx, "client-a"))
	clock = clock.Add(5 * time.Minute)
	assert.False(t, w.Allow(ctx, "client-a"))
}

func TestWindow_AttemptsSpacedBeyondWindowAccepted(t *testing.T) {
	clock := time.UnixMilli(1_700_000_000_000)
	w := ratelimit.New(ratelimit.HireLimit, ratelimit.HireWindow, nil).
		WithClock(func() time.Time { return clock })
	ctx := context.Background()

	assert.True(t, w.Allow(ctx, "client-a"))
	assert.True(t, w.Allow(ctx, "client-a"))

	clock = clock.Add(time.Hour + time.Minute)
	assert.True(t, w.Allow(ctx, "client-a"))
}

func TestWindow_KeysAreIndependent(t *testing.T) {
	w := ratelimit.New(1, time.Hour, nil)
	ctx := context.Background()

	assert.True(t, w.Allow(ctx, "client-a"))
	assert.True(t, w.Allow(ctx, "client-b"))
	assert.False(t, w.Allow(ctx, "client-a"))
}

func TestWindow_RejectedAttemptNotRecorded(t *testing.T) {
	clock := time.UnixMilli(1_700_000_000_000)
	w := ratelimit.New(2, time.Hour, nil).
		WithClock(func() time.Time { return clock })
	ctx := context.Background()

	assert.True(t, w.Allow(ctx, "client-a"))
	assert.True(t, w.Allow(ctx, "client-a"))
	// Probing during the lockout must not push the reset further out.
	for i := 0; i < 5; i++ {
		clock = clock.Add(10 * time.Minute)
		w.Allow(ctx, "client-a")
	}
	clock = clock.Add(11 * time.Minute) // first stamp now 61m old
	assert.True(t, w.Allow(ctx, "client-a"))
}

func TestWindow_CacheBackedStateSurvivesNewLimiter(t *testing.T) {
	store := cache.NewMemoryAdapter()
	clock := time.UnixMilli(1_700_000_000_000)
	ctx := context.Background()

	w1 := ratelimit.New(2, time.Hour, store).
		WithClock(func() time.Time { return clock })
	assert.True(t, w1.Allow(ctx, "client-a"))
	assert.True(t, w1.Allow(ctx, "client-a"))

	// A fresh limiter over the same store sees the spent budget.
	w2 := ratelimit.New(2, time.Hour, store).
		WithClock(func() time.Time { return clock })
	assert.False(t, w2.Allow(ctx, "client-a"))
}
