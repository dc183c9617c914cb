package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/pkg/config"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

func authFixture(t *testing.T) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewAuthService(
		config.TeacherConfig{Email: "teacher@example.com", PasswordHash: string(hash), DisplayName: "Cô Lan"},
		config.JWTConfig{Secret: "test-secret", Expiration: time.Hour, Issuer: "edutrack"},
		nil, nil,
	)
}

func TestLoginSuccess(t *testing.T) {
	svc := authFixture(t)

	result, err := svc.Login(context.Background(), models.LoginRequest{Email: "teacher@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "Cô Lan", result.Teacher.DisplayName)
	assert.InDelta(t, time.Hour.Seconds(), float64(result.ExpiresIn), 5)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := authFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "teacher@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrUnauthorized))

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "other@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrUnauthorized))
}

func TestLoginValidation(t *testing.T) {
	svc := authFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestValidateTokenRoundTrip(t *testing.T) {
	svc := authFixture(t)

	result, err := svc.Login(context.Background(), models.LoginRequest{Email: "teacher@example.com", Password: "secret123"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "teacher@example.com", claims.Email)
	assert.Equal(t, "Cô Lan", claims.DisplayName)
	assert.Equal(t, "edutrack", claims.Issuer)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := authFixture(t)

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrUnauthorized))
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	svc := authFixture(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	other := NewAuthService(
		config.TeacherConfig{Email: "teacher@example.com", PasswordHash: string(hash)},
		config.JWTConfig{Secret: "different-secret", Expiration: time.Hour, Issuer: "edutrack"},
		nil, nil,
	)
	result, err := other.Login(context.Background(), models.LoginRequest{Email: "teacher@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(result.AccessToken)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrUnauthorized))
}
