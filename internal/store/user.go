package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Ashupap/ShorelineVision-sub000/types"
)

const userColumns = `id, username, email, first_name, last_name, role, is_active, password_hash, last_login_at, created_at, updated_at`

// UserRepository handles persistence for users.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (types.User, error) {
	var user types.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.IsActive,
		&user.PasswordHash,
		&user.LastLoginAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (types.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (types.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (types.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

// List returns every account except the built-in system uploader.
func (r *UserRepository) List(ctx context.Context) ([]types.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id <> $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, types.SystemUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []types.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// roleAssignmentLock serializes registrations that let the database pick
// the role, so only one of two concurrent first accounts becomes admin.
const roleAssignmentLock = 7_245_001

// Create inserts a new user. When user.Role is empty the role is decided
// inside the statement: the first real account becomes admin, every later
// one becomes a regular user.
func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	const query = `
		INSERT INTO users (id, username, email, first_name, last_name, role, is_active, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5,
			COALESCE(NULLIF($6::text, ''),
				CASE WHEN EXISTS (SELECT 1 FROM users WHERE id <> $7) THEN 'user' ELSE 'admin' END),
			$8, $9, $10, $11)
		RETURNING role`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.User{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if user.Role == "" {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, roleAssignmentLock); err != nil {
			return types.User{}, err
		}
	}

	if err := tx.QueryRowContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Role,
		types.SystemUserID,
		user.IsActive,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.Role); err != nil {
		return types.User{}, translateError(err)
	}
	if err := tx.Commit(); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// Update merges the non-nil fields of patch into the user and refreshes
// updated_at.
func (r *UserRepository) Update(ctx context.Context, id string, patch types.UserPatch) (types.User, error) {
	const query = `
		UPDATE users
		SET email = COALESCE($1, email),
			first_name = COALESCE($2, first_name),
			last_name = COALESCE($3, last_name),
			role = COALESCE($4, role),
			is_active = COALESCE($5, is_active),
			password_hash = COALESCE($6, password_hash),
			last_login_at = COALESCE($7, last_login_at),
			updated_at = $8
		WHERE id = $9
		RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRowContext(
		ctx,
		query,
		patch.Email,
		patch.FirstName,
		patch.LastName,
		patch.Role,
		patch.IsActive,
		patch.PasswordHash,
		patch.LastLoginAt,
		time.Now().UTC(),
		id,
	))
	if err != nil {
		return types.User{}, translateError(err)
	}
	return user, nil
}

// Upsert creates the user or, when a row with the same id exists, merges
// the supplied fields into it. The statement is atomic, so concurrent upserts of one
// id never produce two rows.
func (r *UserRepository) Upsert(ctx context.Context, user types.User) (types.User, error) {
	now := time.Now().UTC()

	// An empty role or password hash keeps the stored value on update and
	// falls back to a plain user without a usable password on insert.
	const query = `
		INSERT INTO users (id, username, email, first_name, last_name, role, is_active, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE(NULLIF($6::text, ''), 'user'), $7, COALESCE(NULLIF($8::text, ''), '!'), $9, $9)
		ON CONFLICT (id) DO UPDATE
		SET username = EXCLUDED.username,
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			role = COALESCE(NULLIF($6::text, ''), users.role),
			is_active = EXCLUDED.is_active,
			password_hash = COALESCE(NULLIF($8::text, ''), users.password_hash),
			updated_at = EXCLUDED.updated_at
		RETURNING ` + userColumns
	upserted, err := scanUser(r.db.QueryRowContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Role,
		user.IsActive,
		user.PasswordHash,
		now,
	))
	if err != nil {
		return types.User{}, translateError(err)
	}
	return upserted, nil
}
