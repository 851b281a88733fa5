package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, Claims{UserID: userID, Email: "alice@example.com", Role: "admin"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Valid token should pass validation
	err = j.Validate(ctx, token)
	assert.NoError(t, err)

	// Extract claims
	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Empty(t, claims.Mobile)
	assert.NotNil(t, claims.IssuedAt)
}

func TestJWT_MobileClaim(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	token, err := j.Generate(ctx, Claims{UserID: uuid.New(), Mobile: "9876543210", Role: "user"})
	assert.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "9876543210", claims.Mobile)
	assert.Empty(t, claims.Email)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute)) // already expired

	ctx := context.Background()

	token, err := j.Generate(ctx, Claims{UserID: uuid.New()})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validation should fail
	err = j.Validate(ctx, token)
	assert.Error(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_WithClock(t *testing.T) {
	issued := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	current := issued
	j := New(WithSecretKey("s"), WithExpiration(time.Hour), WithClock(func() time.Time { return current }))
	ctx := context.Background()

	token, err := j.Generate(ctx, Claims{UserID: uuid.New()})
	assert.NoError(t, err)

	current = issued.Add(30 * time.Minute)
	assert.NoError(t, j.Validate(ctx, token))

	current = issued.Add(2 * time.Hour)
	assert.Error(t, j.Validate(ctx, token))
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	// Totally invalid string
	err := j.Validate(ctx, "invalid.token.string")
	assert.Error(t, err)

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, Claims{UserID: uuid.New()})
	assert.NoError(t, err)

	// Validate with wrong secret should fail
	err = j2.Validate(ctx, token)
	assert.Error(t, err)
}

func TestClaimsContext(t *testing.T) {
	_, ok := ClaimsFromContext(context.Background())
	assert.False(t, ok)

	claims := &Claims{UserID: uuid.New(), Role: "user"}
	got, ok := ClaimsFromContext(WithClaims(context.Background(), claims))
	assert.True(t, ok)
	assert.Equal(t, claims, got)
}
