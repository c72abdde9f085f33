// services/post_service.go - Crew photo feed
package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"astrocrew/models"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// Create publishes a feed post for the user.
func (s *PostService) Create(userID uint, username, caption, photoLink string) (*models.Post, error) {
	if photoLink == "" && caption == "" {
		return nil, fmt.Errorf("%w: caption or photo_link is required", ErrValidation)
	}

	post := models.Post{
		Caption:   caption,
		Username:  username,
		PhotoLink: photoLink,
		UserID:    &userID,
		PostedAt:  time.Now().UTC(),
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Recent returns the newest limit posts.
func (s *PostService) Recent(limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = 20
	}

	posts := []models.Post{}
	if err := s.db.Order("posted_at DESC, id DESC").Limit(limit).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
