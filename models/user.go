// models/user.go
package models

import "time"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:320"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null;size:50"`
	PasswordHash string    `json:"-" gorm:"not null;size:255"`
	TeamID       *uint     `json:"team_id" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`

	Team        *Team        `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Completions []Completion `json:"completions,omitempty" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}
