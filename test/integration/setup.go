//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const migrationFile = "000001_init.up.sql"

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:17.7",
		postgres.WithDatabase("clubs_test"),
		postgres.WithUsername("clubs"),
		postgres.WithPassword("clubs"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, db.PingContext(ctx))

	applyMigrations(t, db)

	t.Cleanup(func() {
		db.Close()
		require.NoError(t, container.Terminate(ctx))
	})

	return db
}

func applyMigrations(t *testing.T, db *sql.DB) {
	var (
		migrationSQL []byte
		err          error
	)

	// go test runs from the package directory, but allow running from the root too
	for _, dir := range []string{filepath.Join("..", "..", "migrations"), "migrations"} {
		migrationSQL, err = os.ReadFile(filepath.Join(dir, migrationFile))
		if err == nil {
			break
		}
	}
	require.NoError(t, err, "cannot read migrations/%s", migrationFile)

	_, err = db.Exec(string(migrationSQL))
	require.NoError(t, err, "apply migration")
}
