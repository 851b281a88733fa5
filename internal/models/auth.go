package models

import (
	"time"

	"github.com/google/uuid"
)

// SignupRequest represents the JSON body for password sign-up
// swagger:model SignupRequest
type SignupRequest struct {
	// Display name, at least 2 characters
	// required: true
	// example: Rahul Kumar
	Name string `json:"name"`

	// Email
	// required: true
	// example: rahul@gmail.com
	Email string `json:"email"`

	// Password, at least 8 characters
	// required: true
	// example: Password123
	Password string `json:"password"`
}

// SignupResponse represents a successful sign-up response
// swagger:model SignupResponse
type SignupResponse struct {
	// Success message
	// example: User created successfully.
	Message string `json:"message"`
}

// SignupErrorResponse represents an error response for sign-up
// swagger:model SignupErrorResponse
type SignupErrorResponse struct {
	// Error message
	// example: User already exists
	Error string `json:"error"`
}

// SigninRequest represents the JSON body for password sign-in
// swagger:model SigninRequest
type SigninRequest struct {
	// Email
	// required: true
	// example: rahul@gmail.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: Password123
	Password string `json:"password"`
}

// UserResponse is the public view of a user
// swagger:model UserResponse
type UserResponse struct {
	ID           uuid.UUID `json:"_id"`
	Name         string    `json:"name" example:"Rahul Kumar"`
	Email        *string   `json:"email,omitempty" example:"rahul@gmail.com"`
	MobileNumber *string   `json:"mobile_number,omitempty" example:"9876543210"`
	Role         Role      `json:"role" example:"user"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUserResponse builds the public view of u.
func NewUserResponse(u UserDB) UserResponse {
	return UserResponse{
		ID:           u.UserID,
		Name:         u.Name,
		Email:        u.Email,
		MobileNumber: u.MobileNumber,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// SigninResponse represents a successful sign-in response
// swagger:model SigninResponse
type SigninResponse struct {
	// JWT token
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// Token type
	// example: bearer
	TokenType string `json:"token_type"`

	// Signed in user
	User UserResponse `json:"user"`
}

// SigninErrorResponse represents an error response for sign-in
// swagger:model SigninErrorResponse
type SigninErrorResponse struct {
	// Error message
	// example: User not found.
	Error string `json:"error"`
}

// GoogleProfile is the identity returned by Google's userinfo endpoint.
type GoogleProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResult is a signed token with the user it was issued for.
type AuthResult struct {
	Token string
	User  UserDB
}
