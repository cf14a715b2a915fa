package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{
	"id", "username", "email", "first_name", "last_name", "role", "is_active",
	"password_hash", "last_login_at", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func strPtr(s string) *string { return &s }

func TestUserRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = \\$1").
		WithArgs("siteadmin").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u-1", "siteadmin", "admin@example.com", nil, nil, "admin", true, "h.s", nil, now, now))

	user, err := repo.GetByUsername(context.Background(), "siteadmin")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	require.NotNil(t, user.Email)
	assert.Equal(t, "admin@example.com", *user.Email)
	assert.Nil(t, user.FirstName)
	assert.Nil(t, user.LastLoginAt)
	assert.True(t, user.IsAdmin())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDecidesRole(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs(roleAssignmentLock).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("u-1", "siteadmin", nil, nil, nil, "", types.SystemUserID, true, "h.s", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("admin"))
	mock.ExpectCommit()

	user, err := repo.Create(context.Background(), types.User{
		ID:           "u-1",
		Username:     "siteadmin",
		IsActive:     true,
		PasswordHash: "h.s",
	})
	require.NoError(t, err)
	assert.Equal(t, types.RoleAdmin, user.Role)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantField  string
	}{
		{name: "username", constraint: "users_username_key", wantField: "username"},
		{name: "email", constraint: "users_email_key", wantField: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db)

			mock.ExpectBegin()
			mock.ExpectExec("SELECT pg_advisory_xact_lock").WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectQuery("INSERT INTO users").
				WillReturnError(&pq.Error{Code: "23505", Constraint: tt.constraint})
			mock.ExpectRollback()

			_, err := repo.Create(context.Background(), types.User{ID: "u-2", Username: "dup", Email: strPtr("d@example.com")})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDuplicateKey)

			var dupErr *DuplicateKeyError
			require.True(t, errors.As(err, &dupErr))
			assert.Equal(t, tt.wantField, dupErr.Field)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_UpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("UPDATE users").
		WillReturnRows(sqlmock.NewRows(userCols))

	_, err := repo.Update(context.Background(), "missing", types.UserPatch{FirstName: strPtr("Ada")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateMergesFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()
	role := types.RoleUser

	mock.ExpectQuery("UPDATE users").
		WithArgs(nil, "Ada", nil, role, nil, nil, nil, sqlmock.AnyArg(), "u-1").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u-1", "ada", nil, "Ada", nil, role, true, "h.s", nil, now, now))

	user, err := repo.Update(context.Background(), "u-1", types.UserPatch{FirstName: strPtr("Ada"), Role: &role})
	require.NoError(t, err)
	require.NotNil(t, user.FirstName)
	assert.Equal(t, "Ada", *user.FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpsertUsesOnConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users (.+) ON CONFLICT \\(id\\) DO UPDATE").
		WithArgs("ext-1", "guest", nil, nil, nil, "", true, "", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("ext-1", "guest", nil, nil, nil, types.RoleUser, true, "!", nil, now, now))

	user, err := repo.Upsert(context.Background(), types.User{ID: "ext-1", Username: "guest", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "ext-1", user.ID)
	assert.Equal(t, types.RoleUser, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpsertMergesRoleAndPassword(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery("ON CONFLICT \\(id\\) DO UPDATE (.+)role = COALESCE(.+)is_active = EXCLUDED.is_active(.+)password_hash = COALESCE").
		WithArgs("ext-1", "guest", nil, nil, nil, types.RoleAdmin, false, "salt.hash", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("ext-1", "guest", nil, nil, nil, types.RoleAdmin, false, "salt.hash", nil, now, now))

	user, err := repo.Upsert(context.Background(), types.User{
		ID:           "ext-1",
		Username:     "guest",
		Role:         types.RoleAdmin,
		PasswordHash: "salt.hash",
	})
	require.NoError(t, err)
	assert.Equal(t, types.RoleAdmin, user.Role)
	assert.False(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListSkipsSystemUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id <> \\$1").
		WithArgs(types.SystemUserID).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u-1", "a", nil, nil, nil, "admin", true, "h.s", nil, now, now).
			AddRow("u-2", "b", nil, nil, nil, "user", false, "h.s", now, now, now))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.NotNil(t, users[1].LastLoginAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
