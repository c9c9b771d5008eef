package upstream

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/repositories"
)

// OverlayTutorCatalogAdapter layers admin-authored overrides on top of a
// tutor catalog at read time. The upstream sheet exposes no write
// endpoint, so corrections are stored locally and merged here.
//
// Override storage failures degrade to the unmodified listing; an admin
// edit going missing must never take the public directory down with it.
type OverlayTutorCatalogAdapter struct {
	base      repositories.TutorRepository
	overrides repositories.TutorOverrideRepository
}

// NewOverlayTutorCatalogAdapter creates the override layer.
func NewOverlayTutorCatalogAdapter(base repositories.TutorRepository, overrides repositories.TutorOverrideRepository) *OverlayTutorCatalogAdapter {
	return &OverlayTutorCatalogAdapter{
		base:      base,
		overrides: overrides,
	}
}

var _ repositories.TutorRepository = (*OverlayTutorCatalogAdapter)(nil)

// List returns the catalog with stored overrides applied.
func (a *OverlayTutorCatalogAdapter) List(ctx context.Context) ([]entities.Tutor, error) {
	tutors, err := a.base.List(ctx)
	if err != nil {
		return nil, err
	}

	overrides, err := a.overrides.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load tutor overrides, serving unmodified listing")
		return tutors, nil
	}

	byID := make(map[int]*entities.TutorOverride, len(overrides))
	for _, o := range overrides {
		byID[o.TutorID] = o
	}
	for i := range tutors {
		if o, ok := byID[tutors[i].ID]; ok {
			o.Apply(&tutors[i])
		}
	}
	return tutors, nil
}

// GetByID returns the tutor at the given batch position with any stored
// override applied.
func (a *OverlayTutorCatalogAdapter) GetByID(ctx context.Context, id int) (*entities.Tutor, error) {
	tutor, err := a.base.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	override, err := a.overrides.Get(ctx, id)
	if err != nil {
		log.Warn().Err(err).Int("tutor_id", id).Msg("Failed to load tutor override, serving unmodified record")
		return tutor, nil
	}
	if override != nil {
		override.Apply(tutor)
	}
	return tutor, nil
}
