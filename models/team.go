// models/team.go
package models

import "time"

type Team struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:100"`
	JoinCode  string    `json:"join_code" gorm:"uniqueIndex;size:10"`
	CreatedAt time.Time `json:"created_at"`

	Members []User `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

func (Team) TableName() string {
	return "teams"
}
