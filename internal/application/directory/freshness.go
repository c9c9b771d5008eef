package directory

import (
	"time"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
)

// DefaultCacheTTL is how long a cached directory listing stays fresh.
const DefaultCacheTTL = 24 * time.Hour

// CacheEntry is the persisted shape of a cached listing: the normalized
// batch plus the epoch-millisecond write time.
type CacheEntry struct {
	Data      []entities.Tutor `json:"data"`
	Timestamp int64            `json:"timestamp"`
}

// NewCacheEntry stamps a batch with the current time.
func NewCacheEntry(data []entities.Tutor, now time.Time) CacheEntry {
	return CacheEntry{Data: data, Timestamp: now.UnixMilli()}
}

// IsFresh reports whether an entry written at entry.Timestamp is still
// inside its ttl at now. An entry exactly ttl old is stale.
func IsFresh(entry CacheEntry, ttl time.Duration, now time.Time) bool {
	age := now.UnixMilli() - entry.Timestamp
	return age < ttl.Milliseconds()
}
