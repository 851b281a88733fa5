package handlers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-gaming-platform/internal/logger"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"github.com/sbilibin2017/gw-gaming-platform/internal/services"
)

// TokenType is the token_type of every issued access token.
const TokenType = "bearer"

const oauthStateCookie = "oauth_state"

// Signuper defines the interface that the sign-up service must implement.
type Signuper interface {
	Register(ctx context.Context, name, email, password string) error
}

// Signiner defines the interface that the sign-in service must implement.
type Signiner interface {
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
}

// GoogleAuthenticator defines the Google OAuth flow used by the handlers.
type GoogleAuthenticator interface {
	GoogleAuthURL(state string) string
	GoogleLogin(ctx context.Context, code string) (*models.AuthResult, error)
}

// NewSignupHandler returns an HTTP handler for password sign-up.
// @Summary User sign-up
// @Description Register a new user with name, email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Sign-up Request"
// @Success 201 {object} models.SignupResponse "User created"
// @Failure 400 {object} models.SignupErrorResponse "Invalid request body"
// @Failure 409 {object} models.SignupErrorResponse "User already exists"
// @Failure 500 {object} models.SignupErrorResponse "Internal server error"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.SignupResponse{Message: "User created successfully."})
	}
}

// NewSigninHandler returns an HTTP handler for password sign-in.
// @Summary User sign-in
// @Description Authenticate a user and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SigninRequest true "Sign-in Request"
// @Success 200 {object} models.SigninResponse "JWT token returned"
// @Failure 400 {object} models.SigninErrorResponse "Invalid request body"
// @Failure 401 {object} models.SigninErrorResponse "Unknown user or wrong password"
// @Failure 500 {object} models.SigninErrorResponse "Internal server error"
// @Router /auth/signin [post]
func NewSigninHandler(svc Signiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SigninRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		res, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.SigninResponse{
			AccessToken: res.Token,
			TokenType:   TokenType,
			User:        models.NewUserResponse(res.User),
		})
	}
}

// NewGoogleLoginHandler returns an HTTP handler that redirects to the Google consent page.
// @Summary Google login
// @Description Redirect to Google OAuth consent page
// @Tags auth
// @Success 307 "Redirect to Google"
// @Router /auth/login/google [get]
func NewGoogleLoginHandler(svc GoogleAuthenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b := make([]byte, 16)
		if _, err := rand.Read(b); err != nil {
			writeError(w, r, err)
			return
		}
		state := hex.EncodeToString(b)

		http.SetCookie(w, &http.Cookie{
			Name:     oauthStateCookie,
			Value:    state,
			Path:     "/",
			Expires:  time.Now().Add(10 * time.Minute),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, svc.GoogleAuthURL(state), http.StatusTemporaryRedirect)
	}
}

// NewGoogleCallbackHandler returns an HTTP handler that completes Google login
// and redirects to the frontend with the issued token.
// @Summary Google OAuth callback
// @Description Exchange the authorization code, create the user on first login and redirect to the frontend
// @Tags auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 302 "Redirect to frontend with token"
// @Failure 400 {object} handlers.ErrorResponse "Invalid OAuth state"
// @Failure 500 {object} handlers.ErrorResponse "Authentication with Google failed."
// @Router /auth/google/callback [get]
func NewGoogleCallbackHandler(svc GoogleAuthenticator, frontendURL string) http.HandlerFunc {
	frontendURL = strings.TrimRight(frontendURL, "/")

	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		cookie, err := r.Cookie(oauthStateCookie)
		if err != nil || cookie.Value == "" || cookie.Value != q.Get("state") {
			logger.Log.Warnw("oauth state mismatch")
			writeErrorMessage(w, http.StatusBadRequest, "Invalid OAuth state")
			return
		}
		http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Value: "", Path: "/", MaxAge: -1})

		res, err := svc.GoogleLogin(r.Context(), q.Get("code"))
		if err != nil {
			if errors.Is(err, services.ErrInvalidArgument) {
				writeError(w, r, err)
				return
			}
			logger.Log.Errorw("google login failed", "error", err)
			writeErrorMessage(w, http.StatusInternalServerError, "Authentication with Google failed.")
			return
		}

		http.Redirect(w, r, frontendURL+"/auth/callback?token="+url.QueryEscape(res.Token), http.StatusFound)
	}
}
