package upstream

import (
	"context"
	"strconv"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/repositories"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/directoryapi"
	apperrors "github.com/aplusacademy/tutor-directory/backend/pkg/errors"
)

// RegistrarAdapter forwards tutor registrations to the upstream
// directory as multipart/form-data.
type RegistrarAdapter struct {
	client directoryapi.Client
}

// NewRegistrarAdapter creates a new registrar adapter.
func NewRegistrarAdapter(client directoryapi.Client) *RegistrarAdapter {
	return &RegistrarAdapter{client: client}
}

var _ repositories.TutorRegistrar = (*RegistrarAdapter)(nil)

// Register submits the registration upstream. The upstream runs its own
// reCAPTCHA check, so the client token travels with the form.
func (a *RegistrarAdapter) Register(ctx context.Context, reg *entities.Registration, image []byte, imageName, recaptchaToken string) error {
	form := directoryapi.RegistrationForm{
		Name:           reg.Name,
		Qualification:  reg.Qualification,
		Subject:        reg.Subject,
		MajorSubjects:  reg.MajorSubjects,
		Experience:     reg.Experience,
		Phone:          reg.Phone,
		Bio:            reg.Bio,
		ExactLocation:  reg.ExactLocation,
		Lat:            formatCoordinate(reg.Location.Latitude),
		Lng:            formatCoordinate(reg.Location.Longitude),
		RecaptchaToken: recaptchaToken,
		ImageName:      imageName,
		Image:          image,
	}
	if err := a.client.RegisterTutor(ctx, form); err != nil {
		return apperrors.NewExternalError("failed to register tutor upstream", err)
	}
	return nil
}

func formatCoordinate(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
