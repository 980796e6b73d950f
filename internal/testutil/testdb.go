package testutil

import (
	"betterfocus-api/internal/storage"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewInMemoryGateway creates a document gateway backed by an in-memory SQLite
// database, migrated and ready for use in tests.
func NewInMemoryGateway() (*storage.SqliteGateway, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return storage.NewSqliteGateway(db)
}
