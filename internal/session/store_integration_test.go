//go:build integration

package session

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ashupap/ShorelineVision-sub000/config"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://user:password@%s:%d/testdb?sslmode=disable", host, port.Int())
}

func TestPGStore_SessionSurvivesRestart(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()
	cfg := config.SessionConfig{Secret: "integration-secret", TTL: time.Hour, CookieName: "connect.sid"}

	firstDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	first, err := New(ctx, firstDB, cfg)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, first.Establish(rec, httptest.NewRequest(http.MethodPost, "/api/login", nil), "u-42"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.NoError(t, firstDB.Close())

	// A new process: fresh connection pool and store, same secret.
	secondDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer secondDB.Close()
	second, err := New(ctx, secondDB, cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.AddCookie(cookies[0])
	userID, err := second.UserID(req)
	require.NoError(t, err)
	assert.Equal(t, "u-42", userID)

	_, err = secondDB.ExecContext(ctx, `UPDATE sessions SET expire = NOW() - INTERVAL '1 minute'`)
	require.NoError(t, err)

	expired := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	expired.AddCookie(cookies[0])
	_, err = second.UserID(expired)
	assert.ErrorIs(t, err, ErrNoSession)

	removed, err := second.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}
