package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/services"
	apperrors "github.com/aplusacademy/tutor-directory/backend/pkg/errors"
)

func validRegistrationInput() services.RegistrationInput {
	return services.RegistrationInput{
		Name:           "Hassan Raza",
		Qualification:  "MSc Mathematics",
		Subject:        "Math",
		MajorSubjects:  "Math, Statistics",
		Experience:     5,
		Phone:          "03211234567",
		Bio:            "Five years of O-level teaching.",
		ExactLocation:  "Model Town, Lahore",
		Latitude:       31.48,
		Longitude:      74.32,
		RecaptchaToken: "token-2",
	}
}

func TestRegistrationService_Register_ForwardsUpstreamAndAudits(t *testing.T) {
	registrar := &stubRegistrar{}
	audit := &stubRegistrationRepo{}
	service := services.NewRegistrationService(registrar, audit, &stubVerifier{})

	reg, err := service.Register(context.Background(), validRegistrationInput(), []byte("img"), "photo.jpg")

	require.NoError(t, err)
	assert.NotEmpty(t, reg.ID)
	require.Len(t, registrar.received, 1)
	assert.Equal(t, "token-2", registrar.lastToken)
	require.Len(t, audit.created, 1)
	assert.Equal(t, reg.ID, audit.created[0].ID)
}

func TestRegistrationService_Register_ValidationFailure(t *testing.T) {
	registrar := &stubRegistrar{}
	service := services.NewRegistrationService(registrar, &stubRegistrationRepo{}, &stubVerifier{})

	input := validRegistrationInput()
	input.Phone = ""
	_, err := service.Register(context.Background(), input, nil, "")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.Empty(t, registrar.received)
}

func TestRegistrationService_Register_RecaptchaFailureBlocks(t *testing.T) {
	registrar := &stubRegistrar{}
	verifier := &stubVerifier{err: apperrors.NewValidationError("captcha verification failed")}
	service := services.NewRegistrationService(registrar, &stubRegistrationRepo{}, verifier)

	_, err := service.Register(context.Background(), validRegistrationInput(), nil, "")

	assert.Error(t, err)
	assert.Empty(t, registrar.received)
	assert.Equal(t, []string{"register"}, verifier.actions)
}

func TestRegistrationService_Register_UpstreamFailureSurfaces(t *testing.T) {
	registrar := &stubRegistrar{err: apperrors.NewExternalError("failed to register tutor upstream", errors.New("502"))}
	audit := &stubRegistrationRepo{}
	service := services.NewRegistrationService(registrar, audit, &stubVerifier{})

	_, err := service.Register(context.Background(), validRegistrationInput(), nil, "")

	assert.Error(t, err)
	assert.Empty(t, audit.created)
}

func TestRegistrationService_Register_AuditFailureIsNotFatal(t *testing.T) {
	registrar := &stubRegistrar{}
	audit := &stubRegistrationRepo{err: errors.New("db down")}
	service := services.NewRegistrationService(registrar, audit, &stubVerifier{})

	reg, err := service.Register(context.Background(), validRegistrationInput(), nil, "")

	require.NoError(t, err)
	assert.NotEmpty(t, reg.ID)
}
