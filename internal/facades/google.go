package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-gaming-platform/internal/logger"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleUserInfoURL is the OpenID userinfo endpoint.
const GoogleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleOAuthFacade runs the Google authorization code flow.
type GoogleOAuthFacade struct {
	config      *oauth2.Config
	userInfoURL string
}

// GoogleOpt configures a GoogleOAuthFacade.
type GoogleOpt func(*GoogleOAuthFacade)

// WithEndpoint overrides the Google OAuth endpoint.
func WithEndpoint(ep oauth2.Endpoint) GoogleOpt {
	return func(f *GoogleOAuthFacade) {
		f.config.Endpoint = ep
	}
}

// WithUserInfoURL overrides the userinfo endpoint.
func WithUserInfoURL(url string) GoogleOpt {
	return func(f *GoogleOAuthFacade) {
		f.userInfoURL = url
	}
}

// NewGoogleOAuthFacade creates a facade for the given client credentials.
func NewGoogleOAuthFacade(clientID, clientSecret, redirectURL string, opts ...GoogleOpt) *GoogleOAuthFacade {
	f := &GoogleOAuthFacade{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: GoogleUserInfoURL,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AuthCodeURL returns the consent page URL carrying state.
func (f *GoogleOAuthFacade) AuthCodeURL(state string) string {
	return f.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Profile exchanges code for a token and fetches the user's profile.
func (f *GoogleOAuthFacade) Profile(ctx context.Context, code string) (*models.GoogleProfile, error) {
	if code == "" {
		return nil, errors.New("missing authorization code")
	}

	token, err := f.config.Exchange(ctx, code)
	if err != nil {
		logger.FromContext(ctx).Errorw("google code exchange failed", "error", err)
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.userInfoURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.config.Client(ctx, token).Do(req)
	if err != nil {
		logger.FromContext(ctx).Errorw("google userinfo request failed", "error", err)
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch userinfo: unexpected status %d", resp.StatusCode)
	}

	var profile models.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}

	return &profile, nil
}
