package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the identity encoded in an access token.
type Claims struct {
	UserID uuid.UUID `json:"-"`                // Mirrors the sub claim
	Email  string    `json:"email,omitempty"`  // Set for email and Google logins
	Mobile string    `json:"mobile,omitempty"` // Set for OTP logins
	Role   string    `json:"role"`             // admin or user
	jwt.RegisteredClaims
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	secretKey string        // Secret key for signing tokens
	exp       time.Duration // Token expiration duration
	now       func() time.Time
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(key string) Opt {
	return func(j *JWT) { j.secretKey = key }
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.exp = exp }
}

// WithClock overrides the time source used for iat and exp.
func WithClock(now func() time.Time) Opt {
	return func(j *JWT) { j.now = now }
}

// New creates a new JWT instance. Tokens live 30 minutes unless configured otherwise.
func New(opts ...Opt) *JWT {
	j := &JWT{exp: 30 * time.Minute, now: time.Now}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate signs a token for the identity in claims. Registered claims are overwritten.
func (j *JWT) Generate(ctx context.Context, claims Claims) (string, error) {
	now := j.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetClaims parses the token string and returns its claims if the token is valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.New("invalid sub format")
	}
	claims.UserID = userID

	return claims, nil
}

// Validate reports whether the token string is a valid, unexpired token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

type claimsKey struct{}

// WithClaims stores verified claims in ctx.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the claims stored by WithClaims.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok && claims != nil
}
