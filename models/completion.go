// models/completion.go
package models

import "time"

// Completion records that a user finished a task, with the proof photo
// location. The composite unique index keeps scoring idempotent: a user
// can complete each task once.
type Completion struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_completions_user_task"`
	TaskID      uint      `json:"task_id" gorm:"not null;uniqueIndex:idx_completions_user_task"`
	ProofURL    string    `json:"photo_url" gorm:"size:255"`
	CompletedAt time.Time `json:"completed_at"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
	Task *Task `json:"-" gorm:"foreignKey:TaskID"`
}

func (Completion) TableName() string {
	return "completions"
}
