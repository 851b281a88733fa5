package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
)

// OTPRequester sends one-time passwords.
type OTPRequester interface {
	SendOTP(ctx context.Context, mobile string) error
}

// OTPVerifier verifies one-time passwords.
type OTPVerifier interface {
	VerifyOTP(ctx context.Context, mobile, code string) (*models.AuthResult, error)
}

// NewSendOTPHandler returns an HTTP handler that sends a one-time password.
// @Summary Send OTP
// @Description Generate a one-time password for a mobile number and deliver it
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SendOTPRequest true "Send OTP Request"
// @Success 200 {object} models.SendOTPResponse "OTP sent"
// @Failure 400 {object} models.OTPErrorResponse "Invalid mobile number"
// @Failure 500 {object} models.OTPErrorResponse "Internal server error"
// @Router /auth/otp/send [post]
func NewSendOTPHandler(svc OTPRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SendOTPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.SendOTP(r.Context(), req.MobileNumber); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.SendOTPResponse{Message: "OTP sent successfully"})
	}
}

// NewVerifyOTPHandler returns an HTTP handler that verifies a one-time password.
// @Summary Verify OTP
// @Description Verify a one-time password and return a JWT token, creating the user on first login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.VerifyOTPRequest true "Verify OTP Request"
// @Success 200 {object} models.VerifyOTPResponse "JWT token returned"
// @Failure 400 {object} models.OTPErrorResponse "Invalid request body"
// @Failure 401 {object} models.OTPErrorResponse "Invalid or expired OTP"
// @Failure 500 {object} models.OTPErrorResponse "Internal server error"
// @Router /auth/otp/verify [post]
func NewVerifyOTPHandler(svc OTPVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.VerifyOTPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		res, err := svc.VerifyOTP(r.Context(), req.MobileNumber, req.OTP)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.VerifyOTPResponse{
			AccessToken: res.Token,
			TokenType:   TokenType,
			User:        models.NewUserResponse(res.User),
		})
	}
}
