package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
)

const packColumns = `pack_id, name, price, spins, discount_percentage, is_active, display_order, created_at, updated_at`

// RechargePackRepository stores recharge packs.
type RechargePackRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewRechargePackRepository creates the repository. txGetter may be nil.
func NewRechargePackRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RechargePackRepository {
	return &RechargePackRepository{db: db, txGetter: txGetter}
}

func (r *RechargePackRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Get returns a pack by id, or nil when absent.
func (r *RechargePackRepository) Get(ctx context.Context, packID string) (*models.RechargePackDB, error) {
	query := `SELECT ` + packColumns + ` FROM recharge_packs WHERE pack_id = $1`

	var pack models.RechargePackDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &pack, query, packID)

	logQuery(query, []any{packID}, pack.PackID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pack, nil
}

// List returns packs ordered by display_order.
func (r *RechargePackRepository) List(ctx context.Context, activeOnly bool) ([]models.RechargePackDB, error) {
	query := `SELECT ` + packColumns + ` FROM recharge_packs`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, pack_id`

	var packs []models.RechargePackDB
	err := r.db.SelectContext(ctx, &packs, query)

	logQuery(query, []any{activeOnly}, len(packs), err)

	if err != nil {
		return nil, err
	}
	return packs, nil
}

// Save inserts a new pack.
func (r *RechargePackRepository) Save(ctx context.Context, pack *models.RechargePackDB) error {
	const query = `
		INSERT INTO recharge_packs (pack_id, name, price, spins, discount_percentage, is_active, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	args := []any{
		pack.PackID, pack.Name, pack.Price, pack.Spins, pack.DiscountPercentage,
		pack.IsActive, pack.DisplayOrder, pack.CreatedAt, pack.UpdatedAt,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}

// Update applies the non-nil fields of upd and reports whether the pack exists.
func (r *RechargePackRepository) Update(ctx context.Context, packID string, upd models.RechargePackUpdate) (bool, error) {
	var (
		sets []string
		args []any
	)
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Name != nil {
		set("name", *upd.Name)
	}
	if upd.Price != nil {
		set("price", *upd.Price)
	}
	if upd.Spins != nil {
		set("spins", *upd.Spins)
	}
	if upd.DiscountPercentage != nil {
		set("discount_percentage", *upd.DiscountPercentage)
	}
	if upd.IsActive != nil {
		set("is_active", *upd.IsActive)
	}
	if upd.DisplayOrder != nil {
		set("display_order", *upd.DisplayOrder)
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, packID)

	query := fmt.Sprintf(`UPDATE recharge_packs SET %s WHERE pack_id = $%d`, strings.Join(sets, ", "), len(args))
	return r.exec(ctx, query, args...)
}

// Deactivate marks a pack inactive and reports whether it exists.
func (r *RechargePackRepository) Deactivate(ctx context.Context, packID string) (bool, error) {
	return r.exec(ctx, `UPDATE recharge_packs SET is_active = FALSE, updated_at = NOW() WHERE pack_id = $1`, packID)
}

// Delete removes a pack and reports whether it existed.
func (r *RechargePackRepository) Delete(ctx context.Context, packID string) (bool, error) {
	return r.exec(ctx, `DELETE FROM recharge_packs WHERE pack_id = $1`, packID)
}

func (r *RechargePackRepository) exec(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
