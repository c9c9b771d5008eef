// Package scheduler wires up the cron job that re-fetches the tutor
// directory ahead of the freshness deadline and rebuilds the search index
// from the refreshed batch.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Refresher re-fetches the cached tutor directory.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Reindexer rebuilds the search index from the current directory.
type Reindexer interface {
	Reindex(ctx context.Context) error
}

// Scheduler wraps robfig/cron and manages the refresh loop.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	reindexer Reindexer
	spec      string // cron spec, e.g. "0 4 * * *"
}

// New creates a Scheduler firing on the given cron spec. refresher and
// reindexer may be nil when the corresponding backend is not wired.
func New(refresher Refresher, reindexer Reindexer, spec string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLogger(cron.DefaultLogger)),
		refresher: refresher,
		reindexer: reindexer,
		spec:      spec,
	}
}

// Start registers the job and starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runRefresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Info().Str("spec", s.spec).Msg("Directory refresh scheduler started")
	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Info().Msg("Directory refresh scheduler stopped")
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	log.Info().Msg("Directory refresh cycle started")

	if s.refresher != nil {
		if err := s.refresher.Refresh(ctx); err != nil {
			log.Error().Err(err).Msg("Directory refresh failed")
			// Stale entries keep serving until the next successful fetch.
			return
		}
	}

	if s.reindexer != nil {
		if err := s.reindexer.Reindex(ctx); err != nil {
			log.Error().Err(err).Msg("Search reindex failed")
			return
		}
	}

	log.Info().Msg("Directory refresh cycle complete")
}
