package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest represents the JSON body for recording a ledger entry
// swagger:model CreateTransactionRequest
type CreateTransactionRequest struct {
	// Amount, greater than 0
	// required: true
	Amount decimal.Decimal `json:"amount" swaggertype:"number" example:"199"`

	// Category
	// required: true
	// example: wallet_topup
	Type Category `json:"type"`

	// Optional external reference
	// example: txn_12345
	ReferenceID *string `json:"reference_id"`
}

// CreateTransactionResponse represents a recorded ledger entry
// swagger:model CreateTransactionResponse
type CreateTransactionResponse struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"number" example:"199"`
	Type          Category        `json:"type" example:"wallet_topup"`
	ReferenceID   *string         `json:"reference_id" example:"txn_12345"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewCreateTransactionResponse builds the response for a stored entry.
func NewCreateTransactionResponse(t TransactionDB) CreateTransactionResponse {
	return CreateTransactionResponse{
		TransactionID: t.ID.String(),
		Amount:        t.Amount,
		Type:          t.Type,
		ReferenceID:   t.ReferenceID,
		CreatedAt:     t.CreatedAt,
	}
}

// CreateTransactionErrorResponse represents an error response for recording a ledger entry
// swagger:model CreateTransactionErrorResponse
type CreateTransactionErrorResponse struct {
	// Error message
	// example: Amount must be greater than 0
	Error string `json:"error"`
}

// UpdateUPIRequest represents the JSON body for setting the admin UPI id
// swagger:model UpdateUPIRequest
type UpdateUPIRequest struct {
	// New UPI id
	// required: true
	// example: admin@upi
	NewUPI string `json:"new_upi"`
}

// MessageResponse carries a human readable outcome
// swagger:model MessageResponse
type MessageResponse struct {
	// example: UPI ID updated successfully.
	Message string `json:"message"`
}

// UPIResponse wraps the admin profile
// swagger:model UPIResponse
type UPIResponse struct {
	Data AdminProfileDB `json:"data"`
}

// UsersResponse lists users without password hashes
// swagger:model UsersResponse
type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

// NoTransactionsResponse is returned for a user with an empty ledger
// swagger:model NoTransactionsResponse
type NoTransactionsResponse struct {
	// example: No transactions found for this user
	Message      string          `json:"message"`
	Transactions []TransactionDB `json:"transactions"`
}

// ReportErrorResponse represents an error response for the admin endpoints
// swagger:model ReportErrorResponse
type ReportErrorResponse struct {
	// Error message
	// example: Month must be between 1 and 12
	Error string `json:"error"`
}
