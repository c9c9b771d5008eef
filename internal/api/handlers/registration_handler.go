package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/services"
)

// Uploaded profile photos are capped well below this; the remainder covers
// the text fields.
const maxRegistrationBody = 10 << 20

// RegistrationHandler handles tutor sign-up HTTP requests
type RegistrationHandler struct {
	service *services.RegistrationService
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(service *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// Register handles POST /api/tutors/register as multipart/form-data, the
// same shape the upstream directory accepts.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxRegistrationBody); err != nil {
		respondWithError(w, http.StatusBadRequest, "expected multipart/form-data")
		return
	}

	input := services.RegistrationInput{
		Name:           r.FormValue("name"),
		Qualification:  r.FormValue("qualification"),
		Subject:        r.FormValue("subject"),
		MajorSubjects:  r.FormValue("major_subjects"),
		Phone:          r.FormValue("phone"),
		Bio:            r.FormValue("bio"),
		ExactLocation:  r.FormValue("exactLocation"),
		RecaptchaToken: r.FormValue("recaptcha_token"),
	}
	if exp, err := strconv.Atoi(r.FormValue("experience")); err == nil {
		input.Experience = exp
	}
	if lat, err := strconv.ParseFloat(r.FormValue("lat"), 64); err == nil {
		input.Latitude = lat
	}
	if lng, err := strconv.ParseFloat(r.FormValue("lng"), 64); err == nil {
		input.Longitude = lng
	}

	var image []byte
	var imageName string
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "failed to read image upload")
			return
		}
		image = data
		imageName = header.Filename
	}

	reg, err := h.service.Register(r.Context(), input, image, imageName)
	if err != nil {
		respondWithAppError(w, err, 0)
		return
	}
	respondWithJSON(w, http.StatusCreated, reg)
}
