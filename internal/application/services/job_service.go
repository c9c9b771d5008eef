package services

import (
	"context"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/directory"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/repositories"
)

// JobQuery is one read over the job board.
type JobQuery struct {
	Criteria directory.JobCriteria
	Visible  int
}

// JobService handles business logic for the job board.
type JobService struct {
	repo repositories.JobRepository
}

// NewJobService creates a new job service
func NewJobService(repo repositories.JobRepository) *JobService {
	return &JobService{repo: repo}
}

// List applies the query to the current postings and returns the visible
// window. Closed postings stay in the list so the board can badge them.
func (s *JobService) List(ctx context.Context, query JobQuery) (*entities.JobPage, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := directory.FilterJobs(jobs, query.Criteria)

	reveal := directory.NewReveal(directory.ListPageSize, len(filtered))
	for reveal.VisibleCount() < query.Visible && !reveal.Complete() {
		reveal.Expand()
	}

	return &entities.JobPage{
		Jobs:     directory.Window(filtered, reveal),
		Total:    len(filtered),
		Visible:  reveal.VisibleCount(),
		Complete: reveal.Complete(),
	}, nil
}

// FeeBounds returns the inclusive fee range across all postings, used to
// initialize the board's fee slider.
func (s *JobService) FeeBounds(ctx context.Context) (entities.FeeBounds, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return entities.FeeBounds{}, err
	}
	return directory.JobFeeBounds(jobs), nil
}
