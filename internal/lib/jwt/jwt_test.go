package jwt

import (
	"testing"
	"time"

	"art_studio/internal/domain/models"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

var testAdmin = models.Admin{
	ID:    uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
	Email: "admin@studio.test",
	Role:  models.RoleAdmin,
}

func TestNewToken_RoundTrip(t *testing.T) {
	token, exp, err := NewToken(testAdmin, secret, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 2*time.Second)

	claims, err := Parse(token, secret)
	require.NoError(t, err)

	assert.Equal(t, testAdmin.ID.String(), claims.Subject)
	assert.Equal(t, testAdmin.Email, claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)

	m := claims.ToModel()
	assert.Equal(t, exp.Unix(), m.ExpiresAt)
}

func TestParse_Expired(t *testing.T) {
	token, _, err := NewToken(testAdmin, secret, -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token, secret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParse_WrongSecret(t *testing.T) {
	token, _, err := NewToken(testAdmin, secret, time.Hour)
	require.NoError(t, err)

	_, err = Parse(token, "other")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	token := gojwt.NewWithClaims(gojwt.SigningMethodNone, &Claims{Email: "x"})
	s, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Parse(s, secret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse("invalid.token.string", secret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
