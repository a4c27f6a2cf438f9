package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/fasthr/hr-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// TestMain connects to TEST_DATABASE_URL and applies migrations; without it the
// integration tests are skipped.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		fmt.Println("TEST_DATABASE_URL not set, skipping repository integration tests")
		os.Exit(0)
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		fmt.Println("failed to connect to test database:", err)
		os.Exit(1)
	}
	if err := db.Migrate(ctx); err != nil {
		fmt.Println("failed to migrate test database:", err)
		os.Exit(1)
	}
	testDB = db

	code := m.Run()
	db.Close()
	os.Exit(code)
}

// truncateAll empties every table so each test starts from a blank schema.
func truncateAll(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	tables := []string{
		"performance_reviews",
		"payroll_records",
		"personal_access_tokens",
		"users",
		"positions",
		"departments",
	}
	for _, table := range tables {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		require.NoError(t, err, "truncate %s", table)
	}
}

func ptr[T any](v T) *T { return &v }
