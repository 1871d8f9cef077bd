package postgresql_test

import (
	"context"
	"fmt"
	"os"

	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/database"
	"github.com/mannerishivardhan/workforce-backend-go/internal/repository/postgresql"
)

// TestDatabaseSetup holds a migrated test database
type TestDatabaseSetup struct {
	DB *database.DB
}

// ErrNoTestDatabase is returned when TEST_DATABASE_URL is not set
var ErrNoTestDatabase = fmt.Errorf("TEST_DATABASE_URL is not set")

// NewTestDatabase connects to TEST_DATABASE_URL and applies the schema
func NewTestDatabase(ctx context.Context) (*TestDatabaseSetup, error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, ErrNoTestDatabase
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if err := postgresql.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &TestDatabaseSetup{DB: db}, nil
}

// TruncateAllTables removes every row written by the repositories
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	_, err := t.DB.Exec(ctx, "TRUNCATE TABLE attendances, employees, shifts, departments CASCADE")
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}

// Close closes the database pool
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
