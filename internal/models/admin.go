package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdminProfileDB stores the payout UPI id of an admin.
type AdminProfileDB struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Admin user id
	UPIID     string    `json:"upi_id" db:"upi_id"`         // UPI id shown to players
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// RechargePackDB represents a purchasable spin pack.
type RechargePackDB struct {
	PackID             string          `json:"pack_id" db:"pack_id"`
	Name               string          `json:"name" db:"name"`
	Price              decimal.Decimal `json:"price" db:"price"`
	Spins              int             `json:"spins" db:"spins"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage" db:"discount_percentage"`
	IsActive           bool            `json:"is_active" db:"is_active"`
	DisplayOrder       int             `json:"display_order" db:"display_order"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" db:"updated_at"`
}

// RechargePackUpdate carries the fields of a partial pack update. Nil fields are left unchanged.
// swagger:model RechargePackUpdate
type RechargePackUpdate struct {
	Name               *string          `json:"name,omitempty"`
	Price              *decimal.Decimal `json:"price,omitempty" swaggertype:"number"`
	Spins              *int             `json:"spins,omitempty"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty" swaggertype:"number"`
	IsActive           *bool            `json:"is_active,omitempty"`
	DisplayOrder       *int             `json:"display_order,omitempty"`
}

// CreateRechargePackRequest represents the JSON body for creating a pack
// swagger:model CreateRechargePackRequest
type CreateRechargePackRequest struct {
	// Unique pack id
	// required: true
	// example: starter
	PackID string `json:"pack_id"`

	// required: true
	// example: Starter Pack
	Name string `json:"name"`

	// required: true
	Price decimal.Decimal `json:"price" swaggertype:"number" example:"99"`

	// required: true
	// example: 10
	Spins int `json:"spins"`

	DiscountPercentage decimal.Decimal `json:"discount_percentage" swaggertype:"number" example:"0"`

	// required: true
	// example: 1
	DisplayOrder int `json:"display_order"`
}

// RechargePackResponse wraps a single pack
// swagger:model RechargePackResponse
type RechargePackResponse struct {
	Success bool           `json:"success" example:"true"`
	Data    RechargePackDB `json:"data"`
	Message string         `json:"message,omitempty" example:"Pack created successfully"`
}

// RechargePacksResponse wraps a list of packs
// swagger:model RechargePacksResponse
type RechargePacksResponse struct {
	Success bool             `json:"success" example:"true"`
	Data    []RechargePackDB `json:"data"`
	Count   int              `json:"count"`
}

// RechargePackDeleteResponse confirms a deletion
// swagger:model RechargePackDeleteResponse
type RechargePackDeleteResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Pack deleted successfully"`
}

// RechargePackErrorResponse represents an error response for the pack endpoints
// swagger:model RechargePackErrorResponse
type RechargePackErrorResponse struct {
	// Error message
	// example: Pack 'starter' not found
	Error string `json:"error"`
}
