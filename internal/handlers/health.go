package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
)

// NewHealthHandler returns an HTTP handler reporting that the API is up.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router / [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Gaming platform API is running"})
	}
}
