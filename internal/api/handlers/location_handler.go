package handlers

import (
	"net/http"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/services"
)

// LocationHandler serves the cascading location hierarchy
type LocationHandler struct {
	service *services.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service *services.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// GetTree handles GET /api/locations
func (h *LocationHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.service.Tree(r.Context())
	if err != nil {
		respondWithAppError(w, err, 0)
		return
	}
	respondWithJSON(w, http.StatusOK, tree)
}

// GetProvinces handles GET /api/locations/provinces
func (h *LocationHandler) GetProvinces(w http.ResponseWriter, r *http.Request) {
	provinces, err := h.service.Provinces(r.Context())
	if err != nil {
		respondWithAppError(w, err, 0)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"provinces": provinces})
}

// GetDistricts handles GET /api/locations/districts
func (h *LocationHandler) GetDistricts(w http.ResponseWriter, r *http.Request) {
	province := r.URL.Query().Get("province")
	if province == "" {
		respondWithError(w, http.StatusBadRequest, "province is required")
		return
	}
	districts, err := h.service.Districts(r.Context(), province)
	if err != nil {
		respondWithAppError(w, err, 0)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"districts": districts})
}

// GetTehsils handles GET /api/locations/tehsils
func (h *LocationHandler) GetTehsils(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	province, district := q.Get("province"), q.Get("district")
	if province == "" || district == "" {
		respondWithError(w, http.StatusBadRequest, "province and district are required")
		return
	}
	tehsils, err := h.service.Tehsils(r.Context(), province, district)
	if err != nil {
		respondWithAppError(w, err, 0)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"tehsils": tehsils})
}

// GetAreas handles GET /api/locations/areas
func (h *LocationHandler) GetAreas(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	province, district, tehsil := q.Get("province"), q.Get("district"), q.Get("tehsil")
	if province == "" || district == "" || tehsil == "" {
		respondWithError(w, http.StatusBadRequest, "province, district and tehsil are required")
		return
	}
	areas, err := h.service.Areas(r.Context(), province, district, tehsil)
	if err != nil {
		respondWithAppError(w, err, 0)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"areas": areas})
}
