package handlers

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/ratelimit"
	"github.com/aplusacademy/tutor-directory/backend/internal/application/services"
)

// HireHandler handles hire request HTTP submissions
type HireHandler struct {
	service *services.HireService
}

// NewHireHandler creates a new hire handler
func NewHireHandler(service *services.HireService) *HireHandler {
	return &HireHandler{service: service}
}

// RequestHire handles POST /api/hire
func (h *HireHandler) RequestHire(w http.ResponseWriter, r *http.Request) {
	var input services.HireInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	input.ClientKey = clientIP(r)

	lead, err := h.service.RequestHire(r.Context(), input)
	if err != nil {
		respondWithAppError(w, err, int(ratelimit.HireWindow.Seconds()))
		return
	}
	respondWithJSON(w, http.StatusCreated, lead)
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
