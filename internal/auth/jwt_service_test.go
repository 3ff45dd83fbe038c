package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestIssueAndVerify(t *testing.T) {
	svc := NewJWTService(testSecret)

	token, err := svc.Issue("admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	// Expiry is one hour out from issuance.
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("other-secret").Issue("admin")
	assert.NoError(t, err)

	_, err = NewJWTService(testSecret).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	svc := NewJWTService(testSecret)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService(testSecret)

	// Sign a token that already expired, with the service's own secret.
	claims := &Claims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, err = svc.Verify(expired)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyRejectsUnexpectedSigningMethod(t *testing.T) {
	svc := NewJWTService(testSecret)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Username: "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
