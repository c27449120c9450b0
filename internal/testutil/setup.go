// Package testutil starts the Postgres test container shared by the
// integration tests of a package and provides fixtures on top of it.
package testutil

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/itsDrac/bidhub/internal/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Global test environment shared across all tests of a package
var globalTestEnv *TestEnv

// TestEnv holds the database container and an open store.
type TestEnv struct {
	DB                 *db.DB
	PostgresContainer  *postgres.PostgresContainer
	DBConnectionString string
	Context            context.Context
}

// SetupTestEnvironment starts Postgres, applies the migrations and opens a pool.
func SetupTestEnvironment(ctx context.Context) (*TestEnv, error) {
	env := &TestEnv{
		Context: ctx,
	}

	pgContainer, err := setupPostgresContainer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}
	env.PostgresContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}
	env.DBConnectionString = connStr

	projectRoot, err := getProjectRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to get project root: %w", err)
	}
	if err := db.Migrate(connStr, filepath.Join(projectRoot, "migrations")); err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	env.DB = db.NewFromPool(pool)

	return env, nil
}

// setupPostgresContainer starts a PostgreSQL testcontainer
func setupPostgresContainer(ctx context.Context) (*postgres.PostgresContainer, error) {
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	return pgContainer, nil
}

// getProjectRoot walks up from the working directory until it finds go.mod.
func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// Cleanup terminates the container and closes the pool.
func (env *TestEnv) Cleanup() error {
	if env.DB != nil {
		env.DB.Close()
	}
	if env.PostgresContainer != nil {
		if err := env.PostgresContainer.Terminate(env.Context); err != nil {
			return fmt.Errorf("failed to terminate postgres container: %w", err)
		}
	}
	return nil
}

// Setup is meant to be called from TestMain. It starts the environment once
// for the package unless the tests run with -short.
func Setup(m *testing.M) int {
	flag.Parse()
	if testing.Short() {
		return m.Run()
	}

	ctx := context.Background()
	env, err := SetupTestEnvironment(ctx)
	if err != nil {
		log.Printf("Failed to setup test environment: %v", err)
		return 1
	}
	globalTestEnv = env

	defer func() {
		if err := env.Cleanup(); err != nil {
			log.Printf("Failed to cleanup test environment: %v", err)
		}
	}()

	return m.Run()
}

// GetTestEnv returns the shared environment, skipping the test when it was
// not started.
func GetTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	if globalTestEnv == nil {
		t.Skip("integration environment not started (short mode)")
	}
	return globalTestEnv
}
