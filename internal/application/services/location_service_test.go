package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/services"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	apperrors "github.com/aplusacademy/tutor-directory/backend/pkg/errors"
)

type stubLocationRepo struct {
	tree entities.LocationTree
}

func (s *stubLocationRepo) Tree(ctx context.Context) (entities.LocationTree, error) {
	return s.tree, nil
}

func sampleTree() entities.LocationTree {
	return entities.LocationTree{
		"Punjab": {
			"Lahore": {
				"Lahore Cantt": {"DHA Phase 1", "Askari 10"},
				"Model Town":   {"Block A"},
			},
			"Kasur": {
				"Kasur": {"City Area"},
			},
		},
		"Sindh": {
			"Karachi": {
				"Clifton": {"Block 2"},
			},
		},
	}
}

func TestLocationService_CascadingLevels(t *testing.T) {
	service := services.NewLocationService(&stubLocationRepo{tree: sampleTree()})
	ctx := context.Background()

	provinces, err := service.Provinces(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Punjab", "Sindh"}, provinces)

	districts, err := service.Districts(ctx, "Punjab")
	require.NoError(t, err)
	assert.Equal(t, []string{"Kasur", "Lahore"}, districts)

	tehsils, err := service.Tehsils(ctx, "Punjab", "Lahore")
	require.NoError(t, err)
	assert.Equal(t, []string{"Lahore Cantt", "Model Town"}, tehsils)

	areas, err := service.Areas(ctx, "Punjab", "Lahore", "Lahore Cantt")
	require.NoError(t, err)
	assert.Equal(t, []string{"DHA Phase 1", "Askari 10"}, areas)
}

func TestLocationService_UnknownLevelsAreNotFound(t *testing.T) {
	service := services.NewLocationService(&stubLocationRepo{tree: sampleTree()})
	ctx := context.Background()

	_, err := service.Districts(ctx, "Balochistan")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)

	_, err = service.Tehsils(ctx, "Punjab", "Multan")
	assert.Error(t, err)

	_, err = service.Areas(ctx, "Sindh", "Karachi", "Korangi")
	assert.Error(t, err)
}

func TestLocationSelection_LowerLevelsReset(t *testing.T) {
	var sel entities.LocationSelection
	sel.SetProvince("Punjab")
	sel.SetDistrict("Lahore")
	sel.SetTehsil("Model Town")
	sel.SetArea("Block A")

	sel.SetDistrict("Kasur")
	assert.Equal(t, "Punjab", sel.Province)
	assert.Equal(t, "Kasur", sel.District)
	assert.Empty(t, sel.Tehsil)
	assert.Empty(t, sel.Area)

	sel.SetProvince("Sindh")
	assert.Empty(t, sel.District)
}
