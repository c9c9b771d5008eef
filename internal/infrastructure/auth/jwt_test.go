package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/auth"
)

func TestTokenService_RoundTrip(t *testing.T) {
	service := auth.NewTokenService("test-secret", time.Hour)

	token, err := service.Generate("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := service.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := auth.NewTokenService("secret-a", time.Hour)
	verifier := auth.NewTokenService("secret-b", time.Hour)

	token, err := issuer.Generate("admin")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	service := auth.NewTokenService("test-secret", time.Millisecond)

	token, err := service.Generate("admin")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = service.Validate(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestTokenService_RejectsMalformedToken(t *testing.T) {
	service := auth.NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := service.Validate(token)
		assert.Error(t, err)
	}
}

func TestTokenService_ZeroTTLUsesDefault(t *testing.T) {
	service := auth.NewTokenService("test-secret", 0)

	token, err := service.Generate("admin")
	require.NoError(t, err)

	subject, err := service.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}
