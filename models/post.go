// models/post.go
package models

import "time"

// Post is a crew feed entry showing off a proof photo.
type Post struct {
	ID        uint      `json:"post_id" gorm:"primaryKey"`
	Caption   string    `json:"caption" gorm:"type:text"`
	Username  string    `json:"username" gorm:"not null;size:100"`
	PhotoLink string    `json:"photo_link" gorm:"size:255"`
	UserID    *uint     `json:"user_id" gorm:"index"`
	PostedAt  time.Time `json:"posted_at"`
}

func (Post) TableName() string {
	return "posts"
}
