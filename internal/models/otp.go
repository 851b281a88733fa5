package models

// SendOTPRequest represents the JSON body for requesting a one-time password
// swagger:model SendOTPRequest
type SendOTPRequest struct {
	// Mobile number
	// required: true
	// example: 9876543210
	MobileNumber string `json:"mobile_number"`
}

// SendOTPResponse represents a successful OTP request
// swagger:model SendOTPResponse
type SendOTPResponse struct {
	// Success message
	// example: OTP sent successfully
	Message string `json:"message"`
}

// VerifyOTPRequest represents the JSON body for verifying a one-time password
// swagger:model VerifyOTPRequest
type VerifyOTPRequest struct {
	// Mobile number
	// required: true
	// example: 9876543210
	MobileNumber string `json:"mobile_number"`

	// One-time password
	// required: true
	// example: 123456
	OTP string `json:"otp"`
}

// VerifyOTPResponse represents a successful OTP verification
// swagger:model VerifyOTPResponse
type VerifyOTPResponse struct {
	// JWT token
	AccessToken string `json:"access_token"`

	// Token type
	// example: bearer
	TokenType string `json:"token_type"`

	// Verified user
	User UserResponse `json:"user"`
}

// OTPErrorResponse represents an error response for the OTP endpoints
// swagger:model OTPErrorResponse
type OTPErrorResponse struct {
	// Error message
	// example: invalid or expired otp
	Error string `json:"error"`
}
