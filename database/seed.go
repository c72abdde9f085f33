// database/seed.go - Task catalog seeding
package database

import (
	"log"
	"time"

	"gorm.io/gorm"

	"astrocrew/models"
)

// SeedTasks loads the default task catalog when the table is empty. The
// catalog is append-only at runtime; tasks are never user-mutable.
func SeedTasks(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Task{}).Count(&count).Error; err != nil {
		log.Printf("Task seed skipped: %v", err)
		return
	}
	if count > 0 {
		return
	}

	now := time.Now().UTC()
	tasks := []models.Task{
		{Name: "Photograph the launch pad", Description: "Visit a launch site and snap the pad.", Points: 10, CreatedAt: now},
		{Name: "Spot the station overhead", Description: "Catch the station during a visible pass and photograph it.", Points: 5, CreatedAt: now},
		{Name: "Sketch the crew patch", Description: "Draw your team's mission patch and photograph the result.", Points: 3, CreatedAt: now},
		{Name: "Freeze-dried dinner night", Description: "Cook and eat an astronaut-style meal.", Points: 5, CreatedAt: now},
		{Name: "Build a bottle rocket", Description: "Launch a water rocket and capture liftoff.", Points: 15, CreatedAt: now},
	}

	if err := db.Create(&tasks).Error; err != nil {
		log.Printf("Task seed failed: %v", err)
		return
	}
	log.Printf("Seeded %d tasks", len(tasks))
}
