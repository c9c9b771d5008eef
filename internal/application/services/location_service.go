package services

import (
	"context"
	"sort"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/repositories"
	apperrors "github.com/aplusacademy/tutor-directory/backend/pkg/errors"
)

// LocationService serves the Province/District/Tehsil/Area hierarchy and
// its cascading levels.
type LocationService struct {
	repo repositories.LocationRepository
}

// NewLocationService creates a new location service
func NewLocationService(repo repositories.LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

// Tree returns the full hierarchy.
func (s *LocationService) Tree(ctx context.Context) (entities.LocationTree, error) {
	return s.repo.Tree(ctx)
}

// Provinces returns the sorted top-level names.
func (s *LocationService) Provinces(ctx context.Context) ([]string, error) {
	tree, err := s.repo.Tree(ctx)
	if err != nil {
		return nil, err
	}
	return sorted(tree.Provinces()), nil
}

// Districts returns the sorted districts of a province.
func (s *LocationService) Districts(ctx context.Context, province string) ([]string, error) {
	tree, err := s.repo.Tree(ctx)
	if err != nil {
		return nil, err
	}
	districts := tree.Districts(province)
	if districts == nil {
		return nil, apperrors.NewNotFoundError("unknown province: " + province)
	}
	return sorted(districts), nil
}

// Tehsils returns the sorted tehsils of a district.
func (s *LocationService) Tehsils(ctx context.Context, province, district string) ([]string, error) {
	tree, err := s.repo.Tree(ctx)
	if err != nil {
		return nil, err
	}
	tehsils := tree.Tehsils(province, district)
	if tehsils == nil {
		return nil, apperrors.NewNotFoundError("unknown district: " + district)
	}
	return sorted(tehsils), nil
}

// Areas returns the areas of a tehsil in upstream order.
func (s *LocationService) Areas(ctx context.Context, province, district, tehsil string) ([]string, error) {
	tree, err := s.repo.Tree(ctx)
	if err != nil {
		return nil, err
	}
	areas := tree.Areas(province, district, tehsil)
	if areas == nil {
		return nil, apperrors.NewNotFoundError("unknown tehsil: " + tehsil)
	}
	return areas, nil
}

func sorted(values []string) []string {
	sort.Strings(values)
	return values
}
