package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gaming-platform/internal/jwt"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
)

// UPIUpdater sets the admin UPI id.
type UPIUpdater interface {
	UpdateUPI(ctx context.Context, adminID uuid.UUID, upi string) (string, error)
}

// UPIGetter returns the admin UPI id shown to players.
type UPIGetter interface {
	GetUPI(ctx context.Context) (*models.AdminProfileDB, error)
}

// UsersGetter lists users.
type UsersGetter interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// NewUpdateUPIHandler returns an HTTP handler that sets the caller's UPI id.
// @Summary Update UPI id
// @Description Create or replace the UPI id of the calling admin
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.UpdateUPIRequest true "UPI id"
// @Success 200 {object} models.MessageResponse "Outcome message"
// @Failure 400 {object} models.ReportErrorResponse "Invalid request body"
// @Failure 401 {object} models.ReportErrorResponse "Unauthorized"
// @Failure 403 {object} models.ReportErrorResponse "Admin privileges required"
// @Failure 500 {object} models.ReportErrorResponse "Error updating UPI ID"
// @Router /admin/update-upi_id [patch]
// @Security BearerAuth
func NewUpdateUPIHandler(svc UPIUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := jwt.ClaimsFromContext(r.Context())
		if !ok {
			writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req models.UpdateUPIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		msg, err := svc.UpdateUPI(r.Context(), claims.UserID, req.NewUPI)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: msg})
	}
}

// NewGetUPIHandler returns an HTTP handler that returns the admin UPI id.
// @Summary Get UPI id
// @Description Return the most recently updated admin UPI id
// @Tags admin
// @Produce json
// @Success 200 {object} models.UPIResponse "Admin profile"
// @Failure 404 {object} models.ReportErrorResponse "UPI ID not found"
// @Failure 500 {object} models.ReportErrorResponse "Error fetching UPI ID"
// @Router /admin/upi_id [get]
func NewGetUPIHandler(svc UPIGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := svc.GetUPI(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.UPIResponse{Data: *profile})
	}
}

// NewGetAllUsersHandler returns an HTTP handler that lists every user.
// @Summary List users
// @Description Return every user without password hashes
// @Tags admin
// @Produce json
// @Success 200 {object} models.UsersResponse "Users"
// @Failure 401 {object} models.ReportErrorResponse "Unauthorized"
// @Failure 403 {object} models.ReportErrorResponse "Admin privileges required"
// @Failure 500 {object} models.ReportErrorResponse "Error fetching users"
// @Router /admin/get_all_users [get]
// @Security BearerAuth
func NewGetAllUsersHandler(svc UsersGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp := models.UsersResponse{Users: make([]models.UserResponse, 0, len(users))}
		for _, u := range users {
			resp.Users = append(resp.Users, models.NewUserResponse(u))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
