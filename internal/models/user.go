package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is a user's access level.
type Role string

// Supported roles
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                       // Primary key
	Name         string    `json:"name" db:"name"`                   // Display name
	Email        *string   `json:"email" db:"email"`                 // Unique email, empty for mobile-only users
	MobileNumber *string   `json:"mobile_number" db:"mobile_number"` // Unique mobile number, empty for email users
	PasswordHash string    `json:"-" db:"password_hash"`             // Bcrypt hash, never serialized
	Role         Role      `json:"role" db:"role"`                   // admin or user
	IsActive     bool      `json:"is_active" db:"is_active"`         // Account enabled flag
	IsVerified   bool      `json:"is_verified" db:"is_verified"`     // Verified through OTP or Google
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}

// UserFilter narrows user counts and aggregations. Zero fields are ignored.
type UserFilter struct {
	ExcludeRole  Role       // role <> ExcludeRole
	Role         Role       // role = Role
	VerifiedOnly bool       // is_verified = true
	From         *time.Time // created_at >= From
	To           *time.Time // created_at < To
}
