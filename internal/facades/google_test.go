package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newGoogleServer(t *testing.T, userInfoStatus int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.Form.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"access-123","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(userInfoStatus)
		w.Write([]byte(`{"email":"rahul@gmail.com","name":"Rahul Kumar"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestFacade(srv *httptest.Server) *GoogleOAuthFacade {
	return NewGoogleOAuthFacade("client-id", "client-secret", "http://localhost/callback",
		WithEndpoint(oauth2.Endpoint{
			AuthURL:   srv.URL + "/auth",
			TokenURL:  srv.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		}),
		WithUserInfoURL(srv.URL+"/userinfo"),
	)
}

func TestGoogleOAuthFacade_AuthCodeURL(t *testing.T) {
	f := NewGoogleOAuthFacade("client-id", "secret", "http://localhost/callback")

	u, err := url.Parse(f.AuthCodeURL("state-xyz"))
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "accounts.google.com", u.Host)
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "state-xyz", q.Get("state"))
	assert.Equal(t, "http://localhost/callback", q.Get("redirect_uri"))
	assert.Contains(t, q.Get("scope"), "email")
}

func TestGoogleOAuthFacade_Profile(t *testing.T) {
	srv := newGoogleServer(t, http.StatusOK)
	f := newTestFacade(srv)

	profile, err := f.Profile(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "rahul@gmail.com", profile.Email)
	assert.Equal(t, "Rahul Kumar", profile.Name)
}

func TestGoogleOAuthFacade_ProfileErrors(t *testing.T) {
	t.Run("empty code", func(t *testing.T) {
		f := NewGoogleOAuthFacade("id", "secret", "http://localhost/callback")
		_, err := f.Profile(context.Background(), "")
		assert.Error(t, err)
	})

	t.Run("exchange rejected", func(t *testing.T) {
		f := newTestFacade(newGoogleServer(t, http.StatusOK))
		_, err := f.Profile(context.Background(), "bad-code")
		assert.ErrorContains(t, err, "exchange code")
	})

	t.Run("userinfo failure", func(t *testing.T) {
		f := newTestFacade(newGoogleServer(t, http.StatusUnauthorized))
		_, err := f.Profile(context.Background(), "good-code")
		assert.ErrorContains(t, err, "unexpected status 401")
	})
}

func TestLogOTPSender(t *testing.T) {
	assert.NoError(t, NewLogOTPSender().Send(context.Background(), "9876543210", "123456"))
}
