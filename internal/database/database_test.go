package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The sqlite path relies on the modernc driver being registered with
// database/sql under the name "sqlite"; without it every local connection
// fails before GORM even sees the DSN.
func TestConnect_SQLiteInMemory(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())

	assert.Equal(t, "sqlite", db.Dialector.Name())
}

func TestConnect_MigrateOnSQLite(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"tenants", "customers", "pets", "services", "appointments", "payments", "refunds"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
