package jwt

import (
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", 15*time.Minute)
	customerID := uuid.New()

	token, err := svc.GenerateToken(customerID, "alice@mail.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, customerID, claims.CustomerID)
	assert.Equal(t, "alice@mail.com", claims.Email)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.GenerateToken(uuid.New(), "old@mail.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := NewJWTService("secret-a", 15*time.Minute)
	other := NewJWTService("secret-b", 15*time.Minute)

	token, err := svc.GenerateToken(uuid.New(), "a@mail.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateToken_WrongSigningMethod(t *testing.T) {
	svc := NewJWTService("test-secret", 15*time.Minute)

	token := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"customerId": uuid.New().String()})
	signed, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_GenerateToken_SignError(t *testing.T) {
	orig := signJWTToken
	defer func() { signJWTToken = orig }()
	signJWTToken = func(token *gojwt.Token, secret []byte) (string, error) {
		return "", errors.New("sign boom")
	}

	svc := NewJWTService("test-secret", 15*time.Minute)
	_, err := svc.GenerateToken(uuid.New(), "a@mail.com")
	assert.Error(t, err)
}
