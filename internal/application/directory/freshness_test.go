package directory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/directory"
)

func TestIsFresh_TTLBoundary(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	ttl := 24 * time.Hour

	cases := []struct {
		name  string
		age   time.Duration
		fresh bool
	}{
		{"just written", 0, true},
		{"23h59m old", 23*time.Hour + 59*time.Minute, true},
		{"exactly ttl", 24 * time.Hour, false},
		{"ttl plus 1ms", 24*time.Hour + time.Millisecond, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := directory.CacheEntry{Timestamp: now.Add(-tc.age).UnixMilli()}
			assert.Equal(t, tc.fresh, directory.IsFresh(entry, ttl, now))
		})
	}
}

func TestNewCacheEntry_StampsWriteTime(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)

	entry := directory.NewCacheEntry(nil, now)

	assert.Equal(t, now.UnixMilli(), entry.Timestamp)
	assert.True(t, directory.IsFresh(entry, directory.DefaultCacheTTL, now))
}
