package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/ratelimit"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/repositories"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/recaptcha"
	apperrors "github.com/aplusacademy/tutor-directory/backend/pkg/errors"
)

// HireInput is a hire request as submitted by the "Hire Me" dialog.
type HireInput struct {
	TutorID        int    `json:"tutor_id" validate:"gte=0"`
	ParentName     string `json:"parent_name" validate:"required,min=2,max=120"`
	ParentPhone    string `json:"parent_phone" validate:"required,min=7,max=20"`
	StudentGrade   string `json:"student_grade"`
	Message        string `json:"message" validate:"max=2000"`
	RecaptchaToken string `json:"recaptcha_token" validate:"required"`
	ClientKey      string `json:"-"`
}

// HireService captures hire-request leads under a per-client rate limit.
type HireService struct {
	tutors   repositories.TutorRepository
	leads    repositories.LeadRepository
	limiter  *ratelimit.Window
	verifier recaptcha.Verifier
	validate *validator.Validate
}

// NewHireService creates a new hire service
func NewHireService(tutors repositories.TutorRepository, leads repositories.LeadRepository, limiter *ratelimit.Window, verifier recaptcha.Verifier) *HireService {
	return &HireService{
		tutors:   tutors,
		leads:    leads,
		limiter:  limiter,
		verifier: verifier,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RequestHire validates the request, verifies the reCAPTCHA token, then
// admits it through the sliding window. A rejected request does not
// consume quota, so retrying after the window clears always succeeds.
func (s *HireService) RequestHire(ctx context.Context, input HireInput) (*entities.Lead, error) {
	if err := s.validate.StructCtx(ctx, input); err != nil {
		return nil, apperrors.NewValidationError("invalid hire request: " + err.Error())
	}
	if err := s.verifier.Verify(ctx, input.RecaptchaToken, "hire"); err != nil {
		return nil, apperrors.NewValidationError("captcha verification failed: " + err.Error())
	}
	if !s.limiter.Allow(ctx, input.ClientKey) {
		return nil, apperrors.NewRateLimitedError("hire request limit reached, try again later")
	}

	tutor, err := s.tutors.GetByID(ctx, input.TutorID)
	if err != nil {
		return nil, err
	}

	lead := &entities.Lead{
		ID:           uuid.New().String(),
		TutorID:      tutor.ID,
		TutorName:    tutor.Name,
		ParentName:   input.ParentName,
		ParentPhone:  input.ParentPhone,
		StudentGrade: input.StudentGrade,
		Message:      input.Message,
		ClientKey:    input.ClientKey,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// LeadsForTutor lists recent leads captured for one tutor.
func (s *HireService) LeadsForTutor(ctx context.Context, tutorID, limit int) ([]*entities.Lead, error) {
	return s.leads.ListByTutor(ctx, tutorID, limit)
}
