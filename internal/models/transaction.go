package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is a ledger entry type from the closed transaction taxonomy.
type Category string

// Transaction categories
const (
	WalletTopup Category = "wallet_topup"
	GameFee     Category = "game_fee"
	Winning     Category = "winning"
	Withdrawal  Category = "withdrawal"
)

// Categories lists the taxonomy in report order.
var Categories = []Category{WalletTopup, GameFee, Winning, Withdrawal}

// Valid reports whether c belongs to the taxonomy.
func (c Category) Valid() bool {
	switch c {
	case WalletTopup, GameFee, Winning, Withdrawal:
		return true
	}
	return false
}

// TransactionDB represents a row of the user_transactions ledger.
type TransactionDB struct {
	ID          uuid.UUID       `json:"_id" db:"id"`                     // Primary key
	UserID      uuid.UUID       `json:"user_id" db:"user_id"`            // Owner, weak reference to users.id
	Amount      decimal.Decimal `json:"amount" db:"amount"`              // Strictly positive amount
	Type        Category        `json:"type" db:"type"`                  // Taxonomy category
	ReferenceID *string         `json:"reference_id" db:"reference_id"` // Optional external correlation id
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`      // Insertion timestamp
}

// EventTransactionCreated is the event_type header of published ledger entries.
const EventTransactionCreated = "transaction.created"

// Transaction is the event published to Kafka after a ledger insert.
type Transaction struct {
	TransactionID string          `json:"transaction_id"` // Ledger row id
	Timestamp     int64           `json:"timestamp"`      // Unix seconds of created_at
	Amount        decimal.Decimal `json:"amount"`         // Entry amount
	UserID        string          `json:"user_id"`        // Owner id
	Operation     Category        `json:"operation"`      // Taxonomy category
}
