package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/repositories"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/recaptcha"
	apperrors "github.com/aplusacademy/tutor-directory/backend/pkg/errors"
)

// RegistrationInput is a tutor sign-up as submitted by the form.
type RegistrationInput struct {
	Name           string  `json:"name" validate:"required,min=2,max=120"`
	Qualification  string  `json:"qualification" validate:"required"`
	Subject        string  `json:"subject" validate:"required"`
	MajorSubjects  string  `json:"major_subjects"`
	Experience     int     `json:"experience" validate:"gte=0,lte=60"`
	Phone          string  `json:"phone" validate:"required,min=7,max=20"`
	Bio            string  `json:"bio" validate:"max=2000"`
	ExactLocation  string  `json:"exact_location"`
	Latitude       float64 `json:"lat"`
	Longitude      float64 `json:"lng"`
	RecaptchaToken string  `json:"recaptcha_token" validate:"required"`
}

// RegistrationService validates sign-ups, forwards them upstream and keeps
// an audit copy.
type RegistrationService struct {
	registrar repositories.TutorRegistrar
	audit     repositories.RegistrationRepository
	verifier  recaptcha.Verifier
	validate  *validator.Validate
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(registrar repositories.TutorRegistrar, audit repositories.RegistrationRepository, verifier recaptcha.Verifier) *RegistrationService {
	return &RegistrationService{
		registrar: registrar,
		audit:     audit,
		verifier:  verifier,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Register runs the sign-up flow: validate, verify the reCAPTCHA token,
// forward upstream, then record the audit copy. The audit write is best
// effort; the upstream directory is the source of truth.
func (s *RegistrationService) Register(ctx context.Context, input RegistrationInput, image []byte, imageName string) (*entities.Registration, error) {
	if err := s.validate.StructCtx(ctx, input); err != nil {
		return nil, apperrors.NewValidationError("invalid registration: " + err.Error())
	}
	if err := s.verifier.Verify(ctx, input.RecaptchaToken, "register"); err != nil {
		return nil, apperrors.NewValidationError("captcha verification failed: " + err.Error())
	}

	reg := &entities.Registration{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Qualification: input.Qualification,
		Subject:       input.Subject,
		MajorSubjects: input.MajorSubjects,
		Experience:    input.Experience,
		Phone:         input.Phone,
		Bio:           input.Bio,
		ExactLocation: input.ExactLocation,
		Location: entities.Location{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.registrar.Register(ctx, reg, image, imageName, input.RecaptchaToken); err != nil {
		return nil, err
	}

	if s.audit != nil {
		if err := s.audit.Create(ctx, reg); err != nil {
			log.Warn().Err(err).Str("registration_id", reg.ID).Msg("Failed to store registration audit copy")
		}
	}

	return reg, nil
}
