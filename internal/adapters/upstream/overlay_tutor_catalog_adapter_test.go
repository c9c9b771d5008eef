package upstream_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplusacademy/tutor-directory/backend/internal/adapters/upstream"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
)

type stubOverrideStore struct {
	overrides map[int]*entities.TutorOverride
	err       error
}

func (s *stubOverrideStore) Upsert(ctx context.Context, override *entities.TutorOverride) error {
	if s.overrides == nil {
		s.overrides = map[int]*entities.TutorOverride{}
	}
	s.overrides[override.TutorID] = override
	return nil
}

func (s *stubOverrideStore) Get(ctx context.Context, tutorID int) (*entities.TutorOverride, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.overrides[tutorID], nil
}

func (s *stubOverrideStore) List(ctx context.Context) ([]*entities.TutorOverride, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*entities.TutorOverride, 0, len(s.overrides))
	for _, o := range s.overrides {
		out = append(out, o)
	}
	return out, nil
}

func overlayFixtureTutors() []entities.Tutor {
	return []entities.Tutor{
		{ID: 0, Name: "Ayesha Khan", City: "Lahore", Phone: "0300-1111111"},
		{ID: 1, Name: "Bilal Ahmed", City: "Karachi"},
	}
}

func TestOverlayList_AppliesStoredOverrides(t *testing.T) {
	phone := "0300-9999999"
	verified := true
	store := &stubOverrideStore{overrides: map[int]*entities.TutorOverride{
		0: {TutorID: 0, Phone: &phone, Verified: &verified},
	}}
	adapter := upstream.NewOverlayTutorCatalogAdapter(
		&stubTutorRepo{tutors: overlayFixtureTutors()}, store)

	tutors, err := adapter.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tutors, 2)

	assert.Equal(t, "0300-9999999", tutors[0].Phone)
	assert.True(t, tutors[0].Verified)
	assert.Equal(t, "Ayesha Khan", tutors[0].Name)
	assert.False(t, tutors[1].Verified)
}

func TestOverlayGetByID_AppliesStoredOverride(t *testing.T) {
	city := "Multan"
	store := &stubOverrideStore{overrides: map[int]*entities.TutorOverride{
		1: {TutorID: 1, City: &city},
	}}
	adapter := upstream.NewOverlayTutorCatalogAdapter(
		&stubTutorRepo{tutors: overlayFixtureTutors()}, store)

	tutor, err := adapter.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Multan", tutor.City)

	untouched, err := adapter.GetByID(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "Lahore", untouched.City)
}

func TestOverlay_StorageFailureServesUnmodifiedListing(t *testing.T) {
	store := &stubOverrideStore{err: errors.New("connection refused")}
	adapter := upstream.NewOverlayTutorCatalogAdapter(
		&stubTutorRepo{tutors: overlayFixtureTutors()}, store)

	tutors, err := adapter.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ayesha Khan", tutors[0].Name)

	tutor, err := adapter.GetByID(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "0300-1111111", tutor.Phone)
}

func TestOverlay_BaseFailurePropagates(t *testing.T) {
	adapter := upstream.NewOverlayTutorCatalogAdapter(
		&stubTutorRepo{err: errors.New("upstream down")}, &stubOverrideStore{})

	_, err := adapter.List(context.Background())
	assert.Error(t, err)
}
