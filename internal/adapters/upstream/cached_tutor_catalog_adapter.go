package upstream

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/directory"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/providers"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/repositories"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/observability"
	apperrors "github.com/aplusacademy/tutor-directory/backend/pkg/errors"
)

const tutorListCacheKey = "directory:tutors"

// CachedTutorCatalogAdapter wraps a TutorRepository with the 24-hour
// listing cache. The cached value is a CacheEntry {data, timestamp}; the
// freshness predicate, not the store's own TTL, decides staleness, so the
// entry survives in storage after expiry without ever being served stale.
//
// A fetch failure surfaces as an error even when an expired entry is
// still present: the site shows an explicit error state rather than
// silently serving day-old data.
type CachedTutorCatalogAdapter struct {
	adapter repositories.TutorRepository
	cache   providers.CacheProvider
	ttl     time.Duration
	metrics *observability.Metrics
	now     func() time.Time
}

// NewCachedTutorCatalogAdapter creates the caching layer. metrics may be
// nil.
func NewCachedTutorCatalogAdapter(adapter repositories.TutorRepository, cache providers.CacheProvider, ttl time.Duration, metrics *observability.Metrics) *CachedTutorCatalogAdapter {
	if ttl <= 0 {
		ttl = directory.DefaultCacheTTL
	}
	return &CachedTutorCatalogAdapter{
		adapter: adapter,
		cache:   cache,
		ttl:     ttl,
		metrics: metrics,
		now:     time.Now,
	}
}

// WithClock overrides the clock. Test hook.
func (a *CachedTutorCatalogAdapter) WithClock(now func() time.Time) *CachedTutorCatalogAdapter {
	a.now = now
	return a
}

var _ repositories.TutorRepository = (*CachedTutorCatalogAdapter)(nil)

// List returns the cached listing while fresh, refetching otherwise. Any
// cache failure (absent key, corrupt JSON, storage down) reads as a miss.
func (a *CachedTutorCatalogAdapter) List(ctx context.Context) ([]entities.Tutor, error) {
	if entry, ok := a.readEntry(ctx); ok && directory.IsFresh(entry, a.ttl, a.now()) {
		observability.RecordCacheHit(ctx, a.metrics, tutorListCacheKey)
		return entry.Data, nil
	}
	observability.RecordCacheMiss(ctx, a.metrics, tutorListCacheKey)

	tutors, err := a.adapter.List(ctx)
	if err != nil {
		return nil, err
	}

	a.writeEntry(directory.NewCacheEntry(tutors, a.now()))
	return tutors, nil
}

// GetByID resolves one tutor by batch position through the cached listing.
func (a *CachedTutorCatalogAdapter) GetByID(ctx context.Context, id int) (*entities.Tutor, error) {
	tutors, err := a.List(ctx)
	if err != nil {
		return nil, err
	}
	if id < 0 || id >= len(tutors) {
		return nil, apperrors.NewNotFoundError("tutor not found")
	}
	tutor := tutors[id]
	return &tutor, nil
}

// Refresh forces a refetch and rewrites the cache entry. Used by the
// scheduled cache warmer.
func (a *CachedTutorCatalogAdapter) Refresh(ctx context.Context) error {
	tutors, err := a.adapter.List(ctx)
	if err != nil {
		return err
	}
	a.writeEntry(directory.NewCacheEntry(tutors, a.now()))
	return nil
}

func (a *CachedTutorCatalogAdapter) readEntry(ctx context.Context) (directory.CacheEntry, bool) {
	if a.cache == nil {
		return directory.CacheEntry{}, false
	}
	data, err := a.cache.Get(ctx, tutorListCacheKey)
	if err != nil {
		return directory.CacheEntry{}, false
	}
	var entry directory.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		log.Warn().Err(err).Msg("discarding unreadable tutor listing cache entry")
		return directory.CacheEntry{}, false
	}
	return entry, true
}

func (a *CachedTutorCatalogAdapter) writeEntry(entry directory.CacheEntry) {
	if a.cache == nil {
		return
	}
	// Synchronous write: the next request must observe the entry, and a
	// storage failure degrades to a future miss.
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := a.cache.Set(context.Background(), tutorListCacheKey, data, 0); err != nil {
		log.Warn().Err(err).Msg("failed to cache tutor listing")
	}
}
