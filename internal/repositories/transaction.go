package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"github.com/sbilibin2017/gw-gaming-platform/internal/pipeline"
)

// TransactionsTable is the ledger table name.
const TransactionsTable = "user_transactions"

// TransactionWriteRepository appends entries to the ledger.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewTransactionWriteRepository creates a writer. txGetter may be nil; when it
// returns a transaction the insert runs inside it.
func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a ledger entry.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn *models.TransactionDB) error {
	const query = `
		INSERT INTO user_transactions (id, user_id, amount, type, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{txn.ID, txn.UserID, txn.Amount, string(txn.Type), txn.ReferenceID, txn.CreatedAt}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}

// TransactionReadRepository queries the ledger.
type TransactionReadRepository struct {
	db *sqlx.DB
}

// NewTransactionReadRepository creates a reader.
func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// FindByUserID returns every ledger entry of a user, oldest first.
func (r *TransactionReadRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) {
	const query = `
		SELECT id, user_id, amount, type, reference_id, created_at
		FROM user_transactions
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, userID)

	logQuery(query, []any{userID}, len(txns), err)

	if err != nil {
		return nil, err
	}
	return txns, nil
}

// Count returns the number of ledger entries matching m.
func (r *TransactionReadRepository) Count(ctx context.Context, m pipeline.Match) (int64, error) {
	return count(ctx, r.db, TransactionsTable, m)
}

// Aggregate runs a pipeline over the ledger.
func (r *TransactionReadRepository) Aggregate(ctx context.Context, p pipeline.Pipeline) ([]pipeline.Row, error) {
	p.From = TransactionsTable
	return aggregate(ctx, r.db, p)
}
