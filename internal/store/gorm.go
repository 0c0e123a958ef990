package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Entry is the single key/value row backing the GORM store. Values are kept
// as JSON so both sqlite and postgres (jsonb) accept them; the raw string is
// JSON-encoded on write and decoded on read.
type Entry struct {
	Key   string         `gorm:"primaryKey;size:255;column:key"`
	Value datatypes.JSON `gorm:"column:value"`
}

// TableName fixes the storage table name.
func (Entry) TableName() string {
	return "kv_entries"
}

// GormStore persists collections in a relational key/value table.
type GormStore struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) a sqlite database at the given path.
func OpenSQLite(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path must not be empty")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	return db, nil
}

// OpenPostgres connects to a postgres database using the supplied URL.
func OpenPostgres(url string) (*gorm.DB, error) {
	if url == "" {
		return nil, fmt.Errorf("database url must not be empty")
	}

	db, err := gorm.Open(postgres.Open(url), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return db, nil
}

// NewGormStore wraps a gorm connection and migrates the key/value table.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv table: %w", err)
	}

	return &GormStore{db: db}, nil
}

// Get implements Store.
func (g *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry Entry
	err := g.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	var value string
	if err := json.Unmarshal(entry.Value, &value); err != nil {
		return "", false, fmt.Errorf("corrupt value for key %q: %w", key, err)
	}

	return value, true, nil
}

// Set implements Store.
func (g *GormStore) Set(ctx context.Context, key, value string) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	entry := Entry{Key: key, Value: datatypes.JSON(encoded)}
	return g.db.WithContext(ctx).Save(&entry).Error
}

// Remove implements Store.
func (g *GormStore) Remove(ctx context.Context, key string) error {
	return g.db.WithContext(ctx).Delete(&Entry{}, "key = ?", key).Error
}
