package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/services"
)

// AdminHandler handles admin HTTP requests
type AdminHandler struct {
	service *services.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.service.Login(r.Context(), input.Username, input.Password)
	if err != nil {
		respondWithAppError(w, err, 0)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"token": token})
}

// ListTutors handles GET /api/admin/tutors. It returns the full directory
// without windowing so the dashboard can page it client-side.
func (h *AdminHandler) ListTutors(w http.ResponseWriter, r *http.Request) {
	tutors, err := h.service.ListTutors(r.Context())
	if err != nil {
		respondWithAppError(w, err, 0)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"tutors": tutors,
		"count":  len(tutors),
	})
}

// UpdateTutor handles PUT /api/admin/tutors/{id}
func (h *AdminHandler) UpdateTutor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid tutor ID")
		return
	}

	var edit services.TutorEdit
	if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tutor, err := h.service.UpdateTutor(r.Context(), id, edit)
	if err != nil {
		respondWithAppError(w, err, 0)
		return
	}
	respondWithJSON(w, http.StatusOK, tutor)
}

// VerifyTutor handles PUT /api/admin/tutors/{id}/verify
func (h *AdminHandler) VerifyTutor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid tutor ID")
		return
	}

	var input struct {
		Verified bool `json:"verified"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tutor, err := h.service.SetVerified(r.Context(), id, input.Verified)
	if err != nil {
		respondWithAppError(w, err, 0)
		return
	}
	respondWithJSON(w, http.StatusOK, tutor)
}
