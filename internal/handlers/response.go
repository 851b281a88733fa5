package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-gaming-platform/internal/logger"
	"github.com/sbilibin2017/gw-gaming-platform/internal/services"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// statusOf maps a service error to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		return http.StatusBadRequest
	case services.IsAuthError(err):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUserAlreadyExists),
		errors.Is(err, services.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err with the status of its kind. Unclassified errors
// are reported as a generic internal error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Errorw("request failed", "uri", r.RequestURI, "error", err)
		if !errors.Is(err, services.ErrStoreFailure) {
			msg = "Internal server error"
		}
	}
	writeErrorMessage(w, status, msg)
}

// queryInt reads an optional integer query parameter. ok reports whether
// the parameter was given.
func queryInt(r *http.Request, name string) (v int, ok bool, err error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err = strconv.Atoi(raw)
	return v, true, err
}

// queryBool reads an optional boolean query parameter.
func queryBool(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseBool(raw)
}
