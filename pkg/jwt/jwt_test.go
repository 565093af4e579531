package jwt

import (
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, err := svc.Generate("buyer-1", RoleBuyer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "buyer-1", claims.Subject)
	assert.Equal(t, RoleBuyer, claims.Role)
}

func TestService_Validate_WrongSecret(t *testing.T) {
	token, err := NewService("secret-a", time.Hour).Generate("buyer-1", RoleBuyer)
	require.NoError(t, err)

	_, err = NewService("secret-b", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Validate_Expired(t *testing.T) {
	token, err := NewService("test-secret", -time.Minute).Generate("buyer-1", RoleBuyer)
	require.NoError(t, err)

	_, err = NewService("test-secret", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestService_Validate_WrongSigningMethod(t *testing.T) {
	// Tokens signed with anything but HMAC are rejected
	unsigned := gojwt.NewWithClaims(gojwt.SigningMethodNone, &Claims{Subject: "buyer-1", Role: RoleBuyer})
	token, err := unsigned.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewService("test-secret", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Validate_Garbage(t *testing.T) {
	_, err := NewService("test-secret", time.Hour).Validate("definitely.not.a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Generate_SignError(t *testing.T) {
	orig := signToken
	signToken = func(token *gojwt.Token, secret []byte) (string, error) {
		return "", errors.New("sign failed")
	}
	defer func() { signToken = orig }()

	_, err := NewService("test-secret", time.Hour).Generate("buyer-1", RoleBuyer)
	require.Error(t, err)
}
