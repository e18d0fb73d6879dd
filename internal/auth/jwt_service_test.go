package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/nkshtr/CropIn/internal/model"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, model.RoleFarmer)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, model.RoleFarmer, claims.Role)
}

func TestJWTService_ValidateToken_Invalid(t *testing.T) {
	svc := NewJWTService("test-secret")
	userID := uuid.New()

	goodToken, err := svc.GenerateToken(userID, model.RoleAdmin)
	assert.NoError(t, err)

	// Signed with the right secret but already expired.
	expiredClaims := &Claims{
		UserID: userID.String(),
		Role:   model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).
		SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed token", token: "not.a.jwt"},
		{name: "empty token", token: ""},
		{name: "expired token", token: expiredToken},
		{name: "tampered signature", token: goodToken + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_SecretRotationInvalidatesTokens(t *testing.T) {
	old := NewJWTService("old-secret")
	token, err := old.GenerateToken(uuid.New(), model.RoleUser)
	assert.NoError(t, err)

	rotated := NewJWTService("new-secret")
	claims, err := rotated.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
