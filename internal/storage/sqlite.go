package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"betterfocus-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// documentKey identifies the app's blob in the documents table. It matches
// the storage key the original client used, so migrated data stays findable.
const documentKey = "betterfocus_data"

// documentRow stores one marshalled document per key.
type documentRow struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for the document blob store
func (documentRow) TableName() string {
	return "documents"
}

// SqliteGateway persists the document as a single row in a local SQLite
// database. Using glebarez/sqlite keeps the build pure Go (no CGO).
type SqliteGateway struct {
	db *gorm.DB
}

// OpenSqlite opens (creating if needed) the database file and runs migrations.
func OpenSqlite(path string) (*SqliteGateway, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return NewSqliteGateway(db)
}

// NewSqliteGateway wraps an existing gorm connection (used by tests with an
// in-memory database) and ensures the schema exists.
func NewSqliteGateway(db *gorm.DB) (*SqliteGateway, error) {
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return &SqliteGateway{db: db}, nil
}

// Load implements Gateway.Load.
func (g *SqliteGateway) Load() (*models.Document, error) {
	var row documentRow
	err := g.db.Where("key = ?", documentKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(row.Value, &doc); err != nil {
		return nil, fmt.Errorf("corrupt document: %w", err)
	}
	return &doc, nil
}

// Save implements Gateway.Save.
func (g *SqliteGateway) Save(doc *models.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	row := documentRow{Key: documentKey, Value: data}
	if err := g.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// Ensure SqliteGateway implements Gateway at compile time.
var _ Gateway = (*SqliteGateway)(nil)
