package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
)

// AdminProfileRepository stores admin UPI ids.
type AdminProfileRepository struct {
	db *sqlx.DB
}

// NewAdminProfileRepository creates the repository.
func NewAdminProfileRepository(db *sqlx.DB) *AdminProfileRepository {
	return &AdminProfileRepository{db: db}
}

// GetByUserID returns the profile of an admin, or nil when absent.
func (r *AdminProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.AdminProfileDB, error) {
	const query = `
		SELECT user_id, upi_id, updated_at
		FROM admin_profiles
		WHERE user_id = $1
	`

	var profile models.AdminProfileDB
	err := r.db.GetContext(ctx, &profile, query, userID)

	logQuery(query, []any{userID}, profile.UPIID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetLatest returns the most recently updated profile, or nil when none exists.
func (r *AdminProfileRepository) GetLatest(ctx context.Context) (*models.AdminProfileDB, error) {
	const query = `
		SELECT user_id, upi_id, updated_at
		FROM admin_profiles
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var profile models.AdminProfileDB
	err := r.db.GetContext(ctx, &profile, query)

	logQuery(query, nil, profile.UPIID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save creates or replaces the UPI id of an admin.
func (r *AdminProfileRepository) Save(ctx context.Context, profile *models.AdminProfileDB) error {
	const query = `
		INSERT INTO admin_profiles (user_id, upi_id, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET upi_id = EXCLUDED.upi_id,
		    updated_at = EXCLUDED.updated_at
	`
	args := []any{profile.UserID, profile.UPIID, profile.UpdatedAt}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}
