// Package memdb opens throwaway in-memory SQLite databases carrying the catalog schema.
// It backs repository and service tests and local experiments without a Postgres server.
package memdb

import (
	"fmt"
	"strings"

	"catalog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a fresh in-memory database with foreign keys enforced and the catalog
// tables migrated. The name only has to be unique per process; a random suffix is added.
func Open(name string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s-%s?mode=memory&cache=shared&_foreign_keys=1",
		sanitize(name), uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}
	// A single connection keeps the in-memory database alive and serializes writers.
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, errors.Wrap(err, "failed to enable foreign keys")
	}

	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		return nil, errors.Wrap(err, "failed to migrate sqlite database")
	}

	return db, nil
}

// Close releases the underlying connection, which drops the in-memory database.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sqlite sql.DB")
	}

	return sqlDB.Close()
}

func sanitize(name string) string {
	return strings.NewReplacer("/", "_", " ", "_", "?", "_", "&", "_", "=", "_").Replace(name)
}
