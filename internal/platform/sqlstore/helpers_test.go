package sqlstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/seimei-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

// openMigratedDB returns a fresh, migrated SQLite database under t.TempDir().
func openMigratedDB(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, DriverSQLite, filepath.Join(t.TempDir(), "dict", "seimei.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log, _ := logger.GetTestLogger(t)
	_, err = Migrate(ctx, db, log)
	require.NoError(t, err)
	return db
}
