package repositories

import (
	"context"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
)

// TutorOverrideRepository stores admin-authored record corrections. Upsert
// merges the set fields of the override into any stored row for the same
// tutor, so successive partial edits accumulate.
type TutorOverrideRepository interface {
	Upsert(ctx context.Context, override *entities.TutorOverride) error

	// Get returns the stored override for a tutor, or nil when none exists.
	Get(ctx context.Context, tutorID int) (*entities.TutorOverride, error)

	List(ctx context.Context) ([]*entities.TutorOverride, error)
}
