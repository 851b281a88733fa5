package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gaming-platform/internal/logger"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"github.com/sbilibin2017/gw-gaming-platform/internal/period"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// TransactionWriter appends entries to the ledger.
type TransactionWriter interface {
	Save(ctx context.Context, txn *models.TransactionDB) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionService records ledger entries and publishes them to Kafka.
type TransactionService struct {
	writer      TransactionWriter
	kafkaWriter KafkaWriter
	clock       period.Clock
	afterCommit func(ctx context.Context, fn func())
}

// TransactionOption configures a TransactionService.
type TransactionOption func(*TransactionService)

// WithAfterCommit sets the hook that defers publishing until the ledger
// write is committed. By default events are published right after Save.
func WithAfterCommit(hook func(ctx context.Context, fn func())) TransactionOption {
	return func(s *TransactionService) {
		s.afterCommit = hook
	}
}

// NewTransactionService creates a new TransactionService. kafkaWriter may be nil.
func NewTransactionService(writer TransactionWriter, kafkaWriter KafkaWriter, clock period.Clock, opts ...TransactionOption) *TransactionService {
	if clock == nil {
		clock = period.SystemClock{}
	}
	s := &TransactionService{
		writer:      writer,
		kafkaWriter: kafkaWriter,
		clock:       clock,
		afterCommit: func(_ context.Context, fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// publishTransaction publishes a transaction to Kafka.
func (s *TransactionService) publishTransaction(ctx context.Context, txn models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:     []byte(txn.UserID),
		Value:   data,
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(models.EventTransactionCreated)}},
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.TransactionID, "amount", txn.Amount)
	}
}

// Create records a ledger entry for a player. Only callers with role user may
// record entries.
func (s *TransactionService) Create(
	ctx context.Context,
	userID uuid.UUID,
	role models.Role,
	amount decimal.Decimal,
	category models.Category,
	referenceID *string,
) (*models.TransactionDB, error) {
	if role != models.RoleUser {
		return nil, forbidden("Only users can perform transactions")
	}
	if !amount.IsPositive() {
		return nil, invalidArgument("Amount must be greater than 0")
	}
	if !category.Valid() {
		return nil, invalidArgument("Invalid transaction type")
	}

	txn := &models.TransactionDB{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Type:        category,
		ReferenceID: referenceID,
		CreatedAt:   s.clock.Now().UTC(),
	}
	if err := s.writer.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to save transaction", "userID", userID, "type", category, "error", err)
		return nil, storeError("Failed to create transaction", err)
	}

	event := models.Transaction{
		TransactionID: txn.ID.String(),
		Timestamp:     txn.CreatedAt.Unix(),
		Amount:        txn.Amount,
		UserID:        userID.String(),
		Operation:     category,
	}
	s.afterCommit(ctx, func() { s.publishTransaction(ctx, event) })

	return txn, nil
}
