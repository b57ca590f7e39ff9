package sqlstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/phrazzld/seimei-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, DriverSQLite, filepath.Join(t.TempDir(), "seimei.db"))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	log, buf := logger.GetTestLogger(t)

	first, err := Migrate(ctx, db, log)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := Migrate(ctx, db, log)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	logger.AssertLogContains(t, buf, "dictionary schema up to date")
	logger.AssertLogField(t, buf, "component", "migrations")
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "whatever")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestGooseDialect(t *testing.T) {
	tests := []struct {
		driver  string
		want    string
		wantErr bool
	}{
		{driver: DriverSQLite, want: "sqlite3"},
		{driver: DriverPostgres, want: "postgres"},
		{driver: "mysql", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			got, err := gooseDialect(tt.driver)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
