package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplusacademy/tutor-directory/backend/internal/adapters/upstream"
	"github.com/aplusacademy/tutor-directory/backend/internal/api/handlers"
	"github.com/aplusacademy/tutor-directory/backend/internal/api/middleware"
	"github.com/aplusacademy/tutor-directory/backend/internal/api/routes"
	"github.com/aplusacademy/tutor-directory/backend/internal/application/ratelimit"
	"github.com/aplusacademy/tutor-directory/backend/internal/application/services"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/auth"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/recaptcha"
)

type fakeOverrideRepo struct {
	stored map[int]*entities.TutorOverride
}

func (f *fakeOverrideRepo) Upsert(ctx context.Context, override *entities.TutorOverride) error {
	if f.stored == nil {
		f.stored = map[int]*entities.TutorOverride{}
	}
	if existing, ok := f.stored[override.TutorID]; ok {
		existing.Merge(override)
		return nil
	}
	copied := *override
	f.stored[override.TutorID] = &copied
	return nil
}

func (f *fakeOverrideRepo) Get(ctx context.Context, tutorID int) (*entities.TutorOverride, error) {
	return f.stored[tutorID], nil
}

func (f *fakeOverrideRepo) List(ctx context.Context) ([]*entities.TutorOverride, error) {
	out := make([]*entities.TutorOverride, 0, len(f.stored))
	for _, o := range f.stored {
		out = append(out, o)
	}
	return out, nil
}

func newAdminTestServer(t *testing.T) http.Handler {
	t.Helper()

	overrides := &fakeOverrideRepo{}
	tutorRepo := upstream.NewOverlayTutorCatalogAdapter(
		&fakeTutorRepo{tutors: directoryTutors()}, overrides)

	tutorService := services.NewTutorService(tutorRepo, nil)
	jobService := services.NewJobService(&fakeJobRepo{})
	locationService := services.NewLocationService(&fakeLocationRepo{})
	limiter := ratelimit.New(ratelimit.HireLimit, ratelimit.HireWindow, nil)
	hireService := services.NewHireService(tutorRepo, &fakeLeadRepo{}, limiter, recaptcha.Disabled{})

	tokens := auth.NewTokenService("test-secret", time.Hour)
	adminService := services.NewAdminService(
		services.AdminCredentials{Username: "admin", Password: "hunter2"},
		tokens, tutorRepo, overrides)

	router := routes.NewRouter(
		handlers.NewTutorHandler(tutorService),
		handlers.NewJobHandler(jobService),
		handlers.NewLocationHandler(locationService),
		nil,
		handlers.NewHireHandler(hireService),
		handlers.NewAdminHandler(adminService),
		middleware.AdminAuthMiddleware(adminService),
		nil,
		nil,
	)
	return router.SetupRoutes()
}

func adminLogin(t *testing.T, handler http.Handler) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"username":"admin","password":"hunter2"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["token"])
	return body["token"]
}

func TestAdminLogin_RejectsBadCredentials(t *testing.T) {
	handler := newAdminTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminTutors_RequiresBearerToken(t *testing.T) {
	handler := newAdminTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/tutors", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/tutors", nil)
	req.Header.Set("Authorization", "Bearer forged-token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminTutors_ListsFullDirectory(t *testing.T) {
	handler := newAdminTestServer(t)
	token := adminLogin(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/tutors", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Tutors []entities.Tutor `json:"tutors"`
		Count  int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
}

func TestAdminVerify_TogglePropagatesToPublicListing(t *testing.T) {
	handler := newAdminTestServer(t)
	token := adminLogin(t, handler)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/tutors/2/verify",
		strings.NewReader(`{"verified":true}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/tutors", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var page entities.TutorPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Tutors, 3)
	assert.True(t, page.Tutors[2].Verified)
	assert.False(t, page.Tutors[0].Verified)
}

func TestAdminUpdate_PartialEdit(t *testing.T) {
	handler := newAdminTestServer(t)
	token := adminLogin(t, handler)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/tutors/0",
		strings.NewReader(`{"phone":"0300-7777777"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var tutor entities.Tutor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tutor))
	assert.Equal(t, "0300-7777777", tutor.Phone)
	assert.Equal(t, "Ayesha Khan", tutor.Name)
}

func TestAdminUpdate_EmptyEditRejected(t *testing.T) {
	handler := newAdminTestServer(t)
	token := adminLogin(t, handler)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/tutors/0",
		strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminUpdate_UnknownTutor(t *testing.T) {
	handler := newAdminTestServer(t)
	token := adminLogin(t, handler)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/tutors/42",
		strings.NewReader(`{"phone":"0300-7777777"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
