// models/task.go
package models

import "time"

type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"type:text"`
	Points      int       `json:"points" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Task) TableName() string {
	return "tasks"
}
