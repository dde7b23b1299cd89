// Package testutil provides shared helpers for package tests.
package testutil

import (
	"fmt"
	"testing"

	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated, private in-memory sqlite database that is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db := NewUnmigratedDB(t)
	require.NoError(t, database.Migrate(db))
	return db
}

// NewUnmigratedDB is NewDB without running migrations.
func NewUnmigratedDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := database.Open(config.DriverSQLite, dsn, logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive and serialises access.
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}
