package jwt

import (
	"os"
	"testing"
	"time"

	"FoodBridge-Backend/domain"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNGO() domain.NGO {
	return domain.NGO{
		ID:                 "a2e8b9f0-0000-0000-0000-000000000001",
		Email:              "ngo@example.com",
		Name:               "Test NGO",
		City:               "Lahore",
		RegistrationNumber: "REG-42",
	}
}

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	os.Setenv("JWT_SECRET", "round-trip-secret")
	svc := NewJWTService()

	token := svc.GenerateTokenNGO(testNGO())
	require.NotEmpty(t, token)

	claims, err := svc.GetNGOByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a2e8b9f0-0000-0000-0000-000000000001", claims.NGOID)
	assert.Equal(t, "ngo@example.com", claims.Email)
	assert.Equal(t, "Test NGO", claims.Name)
	assert.Equal(t, "Lahore", claims.City)
	assert.Equal(t, "REG-42", claims.RegistrationNumber)
}

func TestGetNGOByToken_WrongSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "right-secret")
	issuer := NewJWTService()
	token := issuer.GenerateTokenNGO(testNGO())

	os.Setenv("JWT_SECRET", "wrong-secret")
	verifier := NewJWTService()

	_, err := verifier.GetNGOByToken(token)
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetNGOByToken_Expired(t *testing.T) {
	os.Setenv("JWT_SECRET", "expiry-secret")
	svc := NewJWTService()

	claims := NGOClaims{
		NGOID: "some-id",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).
		SignedString([]byte("expiry-secret"))
	require.NoError(t, err)

	_, err = svc.GetNGOByToken(token)
	require.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestGetNGOByToken_Malformed(t *testing.T) {
	os.Setenv("JWT_SECRET", "any-secret")
	svc := NewJWTService()

	_, err := svc.GetNGOByToken("not.a.jwt")
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}
