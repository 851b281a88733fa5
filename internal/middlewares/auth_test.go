package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gaming-platform/internal/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name             string
		mockSetup        func(m *MockTokener)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "InvalidToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{UserID: userID, Role: "user"}, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockTokener)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				claims, ok := jwt.ClaimsFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, userID, claims.UserID)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if !tt.expectNextCalled {
				assert.Contains(t, rr.Body.String(), `"error"`)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name           string
		claims         *jwt.Claims
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "admin",
			claims:         &jwt.Claims{UserID: uuid.New(), Role: "admin"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "user",
			claims:         &jwt.Claims{UserID: uuid.New(), Role: "user"},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"Admin privileges required"}`,
		},
		{
			name:           "anonymous",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Not authenticated"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
			if tt.claims != nil {
				req = req.WithContext(jwt.WithClaims(req.Context(), tt.claims))
			}
			rr := httptest.NewRecorder()

			RequireRole("admin")(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
