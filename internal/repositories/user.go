package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"github.com/sbilibin2017/gw-gaming-platform/internal/pipeline"
)

// UsersTable is the users table name.
const UsersTable = "users"

const userColumns = `id, name, email, mobile_number, password_hash, role, is_active, is_verified, created_at, updated_at`

// UserReadRepository queries users.
type UserReadRepository struct {
	db *sqlx.DB
}

// NewUserReadRepository creates a reader.
func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with email, or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email)
}

// GetByMobile returns the user with mobile number, or nil when absent.
func (r *UserReadRepository) GetByMobile(ctx context.Context, mobile string) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE mobile_number = $1 LIMIT 1`, mobile)
}

// GetByID returns the user with id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 LIMIT 1`, id)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)

	logQuery(query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Find returns the users matching m, oldest first.
func (r *UserReadRepository) Find(ctx context.Context, m pipeline.Match) ([]models.UserDB, error) {
	where, args, err := pipeline.CompileMatch(m)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + userColumns + ` FROM users ` + where + ` ORDER BY created_at, id`

	var users []models.UserDB
	err = r.db.SelectContext(ctx, &users, query, args...)

	logQuery(query, args, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the number of users matching m.
func (r *UserReadRepository) Count(ctx context.Context, m pipeline.Match) (int64, error) {
	return count(ctx, r.db, UsersTable, m)
}

// Aggregate runs a pipeline over users.
func (r *UserReadRepository) Aggregate(ctx context.Context, p pipeline.Pipeline) ([]pipeline.Row, error) {
	p.From = UsersTable
	return aggregate(ctx, r.db, p)
}

// UserWriteRepository persists users.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewUserWriteRepository creates a writer. txGetter may be nil.
func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (id, name, email, mobile_number, password_hash, role, is_active, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	`
	args := []any{
		user.UserID, user.Name, user.Email, user.MobileNumber, user.PasswordHash,
		string(user.Role), user.IsActive, user.IsVerified, user.CreatedAt,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// password hash stays out of the log
	logQuery(query, []any{user.UserID, user.Name, user.Email, user.MobileNumber, user.Role}, rowsAffected, err)

	return err
}

// MarkVerified sets is_verified for the user with id.
func (r *UserWriteRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE users SET is_verified = TRUE, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	return err
}
