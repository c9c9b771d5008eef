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

// JobBoardAdapter implements JobRepository against the remote directory
// API.
type JobBoardAdapter struct {
	client directoryapi.Client
	group  singleflight.Group
}

// NewJobBoardAdapter creates a new job board adapter.
func NewJobBoardAdapter(client directoryapi.Client) *JobBoardAdapter {
	return &JobBoardAdapter{client: client}
}

var _ repositories.JobRepository = (*JobBoardAdapter)(nil)

// List fetches and normalizes all postings.
func (a *JobBoardAdapter) List(ctx context.Context) ([]entities.Job, error) {
	result, err, _ := a.group.Do("jobs", func() (any, error) {
		raw, err := a.client.ListJobs(ctx)
		if err != nil {
			return nil, apperrors.NewUnavailableError("failed to fetch job board", err)
		}
		return directory.NormalizeJobs(raw), nil
	})
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return result.([]entities.Job), nil
}
