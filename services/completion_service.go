// services/completion_service.go - Completion ledger
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"astrocrew/models"
)

type CompletionService struct {
	db *gorm.DB
}

func NewCompletionService(db *gorm.DB) *CompletionService {
	return &CompletionService{db: db}
}

// RecentEntry is a ledger row enriched with the completing user and the
// completed task for display.
type RecentEntry struct {
	CompletionID uint      `json:"completion_id"`
	UserID       uint      `json:"user_id"`
	Username     string    `json:"username"`
	TaskID       uint      `json:"task_id"`
	TaskName     string    `json:"task_name"`
	Points       int       `json:"points"`
	ProofURL     string    `json:"photo_url"`
	CompletedAt  time.Time `json:"completed_at"`
}

// Record inserts a completion for the user and task. Both references are
// checked inside the transaction; nothing is written when either is
// missing or when the user already completed the task.
func (s *CompletionService) Record(userID, taskID uint, proofURL string) (*models.Completion, error) {
	var completion *models.Completion
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %d", ErrNotFound, userID)
			}
			return err
		}

		var task models.Task
		if err := tx.First(&task, taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: task %d", ErrNotFound, taskID)
			}
			return err
		}

		c := models.Completion{
			UserID:      userID,
			TaskID:      taskID,
			ProofURL:    proofURL,
			CompletedAt: time.Now().UTC(),
		}
		if err := tx.Create(&c).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: task %d already completed", ErrConflict, taskID)
			}
			return err
		}

		completion = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completion, nil
}

// Recent returns the newest limit ledger entries, enriched via a join
// across users and tasks.
func (s *CompletionService) Recent(limit int) ([]RecentEntry, error) {
	if limit <= 0 {
		limit = 5
	}
	if limit > 100 {
		limit = 100
	}

	entries := []RecentEntry{}
	err := s.db.Table("completions").
		Select("completions.id AS completion_id, completions.user_id, users.username, " +
			"completions.task_id, tasks.name AS task_name, tasks.points, " +
			"completions.proof_url, completions.completed_at").
		Joins("JOIN users ON users.id = completions.user_id").
		Joins("JOIN tasks ON tasks.id = completions.task_id").
		Order("completions.completed_at DESC, completions.id DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
