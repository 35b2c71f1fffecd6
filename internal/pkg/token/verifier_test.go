package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xerrors "crm-service/internal/pkg/errors"
)

const (
	testSecret   = "test-secret"
	testIssuer   = "crm-service"
	testAudience = "crm-users"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub": "user-1",
		"iss": testIssuer,
		"aud": testAudience,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
}

func TestVerify(t *testing.T) {
	v := NewVerifier(testSecret, testIssuer, testAudience)

	subject, err := v.Verify(signToken(t, testSecret, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestVerify_WrongSecret(t *testing.T) {
	v := NewVerifier(testSecret, testIssuer, testAudience)

	_, err := v.Verify(signToken(t, "other-secret", validClaims()))
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.ErrUnauthorized))
}

func TestVerify_WrongIssuer(t *testing.T) {
	v := NewVerifier(testSecret, testIssuer, testAudience)

	claims := validClaims()
	claims["iss"] = "someone-else"
	_, err := v.Verify(signToken(t, testSecret, claims))
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.ErrUnauthorized))
}

func TestVerify_Expired(t *testing.T) {
	v := NewVerifier(testSecret, testIssuer, testAudience)

	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	_, err := v.Verify(signToken(t, testSecret, claims))
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.ErrUnauthorized))
}

func TestVerify_MissingExpiry(t *testing.T) {
	v := NewVerifier(testSecret, testIssuer, testAudience)

	claims := validClaims()
	delete(claims, "exp")
	_, err := v.Verify(signToken(t, testSecret, claims))
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.ErrUnauthorized))
}

func TestVerify_MissingSubject(t *testing.T) {
	v := NewVerifier(testSecret, testIssuer, testAudience)

	claims := validClaims()
	delete(claims, "sub")
	_, err := v.Verify(signToken(t, testSecret, claims))
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.ErrUnauthorized))
}

func TestVerify_Garbage(t *testing.T) {
	v := NewVerifier(testSecret, testIssuer, testAudience)

	_, err := v.Verify("not-a-token")
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.ErrUnauthorized))
}
