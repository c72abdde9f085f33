// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"astrocrew/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(
		&models.Team{},
		&models.User{},
		&models.Task{},
		&models.Completion{},
		&models.Post{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	createIndexes()
	SeedTasks(db)

	log.Println("All migrations completed")
}

// createIndexes creates the query-path indexes AutoMigrate does not
// derive from struct tags.
func createIndexes() {
	db := GetDB()

	db.Exec("CREATE INDEX IF NOT EXISTS idx_completions_completed_at ON completions(completed_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_completions_task ON completions(task_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_posts_posted_at ON posts(posted_at DESC)")
}
