package services

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/repositories"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/auth"
	apperrors "github.com/aplusacademy/tutor-directory/backend/pkg/errors"
)

// AdminCredentials is the single configured admin login.
type AdminCredentials struct {
	Username string
	Password string
}

// TutorEdit is a partial admin correction to one tutor record. Nil fields
// keep the current value.
type TutorEdit struct {
	Name          *string  `json:"name"`
	Qualification *string  `json:"qualification"`
	Experience    *string  `json:"experience"`
	City          *string  `json:"city"`
	Phone         *string  `json:"phone"`
	Bio           *string  `json:"bio"`
	ImageURL      *string  `json:"image_url"`
	Subjects      []string `json:"subjects"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Verified      *bool    `json:"verified"`
}

func (e *TutorEdit) override(tutorID int, now time.Time) *entities.TutorOverride {
	return &entities.TutorOverride{
		TutorID:       tutorID,
		Name:          e.Name,
		Qualification: e.Qualification,
		Experience:    e.Experience,
		City:          e.City,
		Phone:         e.Phone,
		Bio:           e.Bio,
		ImageURL:      e.ImageURL,
		Subjects:      e.Subjects,
		Latitude:      e.Latitude,
		Longitude:     e.Longitude,
		Verified:      e.Verified,
		UpdatedAt:     now,
	}
}

// AdminService handles admin login and record corrections. The tutor
// repository it reads through must be the override-applying layer so
// edits are visible immediately after writing.
type AdminService struct {
	creds     AdminCredentials
	tokens    *auth.TokenService
	tutors    repositories.TutorRepository
	overrides repositories.TutorOverrideRepository
}

// NewAdminService creates a new admin service
func NewAdminService(
	creds AdminCredentials,
	tokens *auth.TokenService,
	tutors repositories.TutorRepository,
	overrides repositories.TutorOverrideRepository,
) *AdminService {
	return &AdminService{
		creds:     creds,
		tokens:    tokens,
		tutors:    tutors,
		overrides: overrides,
	}
}

// Login checks the configured credentials and issues a bearer token.
func (s *AdminService) Login(ctx context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
	if !userOK || !passOK {
		return "", apperrors.NewUnauthorizedError("invalid credentials")
	}

	token, err := s.tokens.Generate(username)
	if err != nil {
		return "", apperrors.NewInternalError("failed to issue token", err)
	}
	log.Info().Str("username", username).Msg("Admin login")
	return token, nil
}

// Authorize validates a bearer token presented on a protected route.
func (s *AdminService) Authorize(token string) error {
	subject, err := s.tokens.Validate(token)
	if err != nil {
		return apperrors.NewUnauthorizedError("invalid or expired token")
	}
	if subject != s.creds.Username {
		return apperrors.NewUnauthorizedError("invalid or expired token")
	}
	return nil
}

// ListTutors returns the full directory without windowing, overrides
// applied.
func (s *AdminService) ListTutors(ctx context.Context) ([]entities.Tutor, error) {
	return s.tutors.List(ctx)
}

// UpdateTutor stores a partial edit for the record at the given batch
// position and returns the merged result.
func (s *AdminService) UpdateTutor(ctx context.Context, id int, edit TutorEdit) (*entities.Tutor, error) {
	override := edit.override(id, time.Now().UTC())
	if override.Empty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}

	if _, err := s.tutors.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.overrides.Upsert(ctx, override); err != nil {
		return nil, err
	}
	log.Info().Int("tutor_id", id).Msg("Tutor record updated")

	return s.tutors.GetByID(ctx, id)
}

// SetVerified flips the verification badge for one tutor.
func (s *AdminService) SetVerified(ctx context.Context, id int, verified bool) (*entities.Tutor, error) {
	return s.UpdateTutor(ctx, id, TutorEdit{Verified: &verified})
}
