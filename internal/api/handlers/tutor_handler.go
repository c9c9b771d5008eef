package handlers

import (
	"net/http"
	"strconv"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/directory"
	"github.com/aplusacademy/tutor-directory/backend/internal/application/services"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
)

// TutorHandler handles tutor directory HTTP requests
type TutorHandler struct {
	service *services.TutorService
}

// NewTutorHandler creates a new tutor handler
func NewTutorHandler(service *services.TutorService) *TutorHandler {
	return &TutorHandler{service: service}
}

// ListTutors handles GET /api/tutors
func (h *TutorHandler) ListTutors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := services.TutorQuery{
		Criteria: directory.TutorCriteria{
			City:    q.Get("city"),
			Subject: q.Get("subject"),
		},
		Visible: intParam(q.Get("visible"), 0),
	}

	// Proximity ordering only kicks in when both coordinates parse.
	if lat, err := strconv.ParseFloat(q.Get("lat"), 64); err == nil {
		if lng, err := strconv.ParseFloat(q.Get("lng"), 64); err == nil {
			query.Near = &entities.Location{Latitude: lat, Longitude: lng}
		}
	}

	page, err := h.service.List(r.Context(), query)
	if err != nil {
		respondWithAppError(w, err, 0)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// GetTutor handles GET /api/tutors/{id}
func (h *TutorHandler) GetTutor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "tutor ID must be numeric")
		return
	}

	tutor, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err, 0)
		return
	}
	respondWithJSON(w, http.StatusOK, tutor)
}

// SearchTutors handles GET /api/tutors/search
func (h *TutorHandler) SearchTutors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")
	limit := intParam(q.Get("limit"), 30)

	tutors, err := h.service.Search(r.Context(), query, limit)
	if err != nil {
		respondWithAppError(w, err, 0)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"tutors": tutors,
		"count":  len(tutors),
	})
}

// GetFacets handles GET /api/tutors/facets
func (h *TutorHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.service.Facets(r.Context())
	if err != nil {
		respondWithAppError(w, err, 0)
		return
	}
	respondWithJSON(w, http.StatusOK, facets)
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
