// Package upstream adapts the remote directory service into the domain
// repositories: raw listings are fetched, normalized, and (one layer up)
// cached with a 24-hour time-to-live.
package upstream

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/directory"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/repositories"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/directoryapi"
	apperrors "github.com/aplusacademy/tutor-directory/backend/pkg/errors"
)

// TutorCatalogAdapter implements TutorRepository against the remote
// directory API. Concurrent List calls share one in-flight fetch.
type TutorCatalogAdapter struct {
	client directoryapi.Client
	group  singleflight.Group
}

// NewTutorCatalogAdapter creates a new tutor catalog adapter.
func NewTutorCatalogAdapter(client directoryapi.Client) *TutorCatalogAdapter {
	return &TutorCatalogAdapter{client: client}
}

var _ repositories.TutorRepository = (*TutorCatalogAdapter)(nil)

// List fetches and normalizes the full directory. Fetch failures surface
// as Unavailable; malformed records never fail the batch.
func (a *TutorCatalogAdapter) List(ctx context.Context) ([]entities.Tutor, error) {
	result, err, _ := a.group.Do("tutors", func() (any, error) {
		raw, err := a.client.ListTutors(ctx)
		if err != nil {
			return nil, apperrors.NewUnavailableError("failed to fetch tutor directory", err)
		}
		return directory.NormalizeTutors(raw), nil
	})
	if err != nil {
		return nil, err
	}
	// The caller may have been torn down while the shared fetch ran;
	// discard rather than hand back a result no one should apply.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return result.([]entities.Tutor), nil
}

// GetByID resolves one tutor by batch position via the whole listing, so
// the ID always refers to the same ordering the directory view shows.
func (a *TutorCatalogAdapter) GetByID(ctx context.Context, id int) (*entities.Tutor, error) {
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
