package database

import (
	"fmt"
	"log/slog" // use slog for structured logging
	"strings"

	"coursehub/internal/config"
	"coursehub/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN appends the pragmas every connection needs. SQLite scopes
// foreign_keys to a single connection and database/sql pools connections,
// so the pragma has to ride in the DSN where the driver replays it on
// each new connection it opens.
func DSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_pragma=foreign_keys(1)"
	}
	return path + "?_pragma=foreign_keys(1)"
}

// Connect opens the SQLite database and creates the schema. Migration is
// idempotent: tables and unique indexes that already exist are left alone.
func Connect(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(DSN(cfg.DatabaseURL)), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Connected to the database successfully", "path", cfg.DatabaseURL)
	return db, nil
}

// Migrate creates the users, courses and reviews tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Review{},
	)
}
