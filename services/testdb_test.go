package services

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"astrocrew/models"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema.
// A single connection keeps the in-memory database alive and serializes
// access the way the shared relational store would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.Team{},
		&models.User{},
		&models.Task{},
		&models.Completion{},
		&models.Post{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func createTask(t *testing.T, db *gorm.DB, name string, points int) *models.Task {
	t.Helper()

	task := models.Task{
		Name:      name,
		Points:    points,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("create task %q: %v", name, err)
	}
	return &task
}
