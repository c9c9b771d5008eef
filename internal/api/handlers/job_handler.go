package handlers

import (
	"net/http"
	"strconv"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/directory"
	"github.com/aplusacademy/tutor-directory/backend/internal/application/services"
)

// JobHandler handles job board HTTP requests
type JobHandler struct {
	service *services.JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(service *services.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// ListJobs handles GET /api/jobs
func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := services.JobQuery{
		Criteria: directory.JobCriteria{
			City:    q.Get("city"),
			Subject: q.Get("subject"),
			Gender:  q.Get("gender"),
			Grade:   q.Get("grade"),
			FeeMin:  floatParam(q.Get("fee_min")),
			FeeMax:  floatParam(q.Get("fee_max")),
		},
		Visible: intParam(q.Get("visible"), 0),
	}

	page, err := h.service.List(r.Context(), query)
	if err != nil {
		respondWithAppError(w, err, 0)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// GetFeeBounds handles GET /api/jobs/fee-bounds
func (h *JobHandler) GetFeeBounds(w http.ResponseWriter, r *http.Request) {
	bounds, err := h.service.FeeBounds(r.Context())
	if err != nil {
		respondWithAppError(w, err, 0)
		return
	}
	respondWithJSON(w, http.StatusOK, bounds)
}

func floatParam(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
