package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectTestDb opens a fresh in-memory SQLite store and installs it as
// the global handle. Each call gets an isolated database, so test
// packages can run against a clean schema without Postgres.
func ConnectTestDb() {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to open in-memory database: %v", err)
	}

	// A single connection keeps the shared-cache memory database alive
	// for the lifetime of the handle.
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	runMigrations(db)

	Database = DbInstance{Db: db}
}
