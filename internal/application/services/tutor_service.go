package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/directory"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/repositories"
)

// TutorQuery is one read over the directory view: filter criteria, an
// optional reference point for proximity ordering, and the number of
// records the caller has revealed so far (0 means one page).
type TutorQuery struct {
	Criteria directory.TutorCriteria
	Near     *entities.Location
	Visible  int
}

// TutorService runs the directory pipeline: fetch, filter, sort, window.
type TutorService struct {
	repo       repositories.TutorRepository
	searchRepo repositories.TutorSearchRepository
}

// NewTutorService creates a new tutor service
func NewTutorService(repo repositories.TutorRepository, searchRepo repositories.TutorSearchRepository) *TutorService {
	return &TutorService{
		repo:       repo,
		searchRepo: searchRepo,
	}
}

// List applies the query to the current directory and returns the visible
// window. Filtering always runs over the full batch; the window only
// bounds what is returned.
func (s *TutorService) List(ctx context.Context, query TutorQuery) (*entities.TutorPage, error) {
	tutors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := directory.FilterTutors(tutors, query.Criteria)
	if query.Near != nil {
		filtered = directory.SortByProximity(filtered, *query.Near)
	}

	reveal := directory.NewReveal(directory.GridPageSize, len(filtered))
	for reveal.VisibleCount() < query.Visible && !reveal.Complete() {
		reveal.Expand()
	}

	return &entities.TutorPage{
		Tutors:   directory.Window(filtered, reveal),
		Total:    len(filtered),
		Visible:  reveal.VisibleCount(),
		Complete: reveal.Complete(),
	}, nil
}

// GetByID retrieves a tutor by its batch position.
func (s *TutorService) GetByID(ctx context.Context, id int) (*entities.Tutor, error) {
	return s.repo.GetByID(ctx, id)
}

// Facets returns the distinct cities and subjects of the directory.
func (s *TutorService) Facets(ctx context.Context) (entities.TutorFacets, error) {
	tutors, err := s.repo.List(ctx)
	if err != nil {
		return entities.TutorFacets{}, err
	}
	return directory.TutorFacetValues(tutors), nil
}

// Search queries tutors using the search engine if available, falling back
// to in-memory matching over the directory.
func (s *TutorService) Search(ctx context.Context, query string, limit int) ([]entities.Tutor, error) {
	if s.searchRepo != nil {
		return s.searchRepo.Search(ctx, query, limit)
	}

	tutors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = len(tutors)
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	matched := []entities.Tutor{}
	for _, t := range tutors {
		if len(matched) >= limit {
			break
		}
		if matchesTutor(t, needle) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// Reindex rebuilds the search index from the current directory. A no-op
// when no search engine is wired.
func (s *TutorService) Reindex(ctx context.Context) error {
	if s.searchRepo == nil {
		return nil
	}
	tutors, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if err := s.searchRepo.IndexBatch(ctx, tutors); err != nil {
		return err
	}
	log.Info().Int("count", len(tutors)).Msg("Reindexed tutor directory")
	return nil
}

func matchesTutor(t entities.Tutor, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(t.City), needle) {
		return true
	}
	for _, subject := range t.Subjects {
		if strings.Contains(strings.ToLower(subject), needle) {
			return true
		}
	}
	return false
}
