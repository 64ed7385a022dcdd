// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"testing"

	"go-pos-ledger/internal/repository"
	"go-pos-ledger/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory SQLite database closed at test cleanup.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.OpenSQLite(":memory:", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
