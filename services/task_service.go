// services/task_service.go - Task catalog (read-only at runtime)
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"astrocrew/models"
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// GetByID retrieves a task by ID.
func (s *TaskService) GetByID(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: task %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &task, nil
}

// List returns the whole catalog.
func (s *TaskService) List() ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListNotCompletedBy returns the tasks the user has not completed yet.
func (s *TaskService) ListNotCompletedBy(userID uint) ([]models.Task, error) {
	tasks := []models.Task{}
	completed := s.db.Model(&models.Completion{}).
		Select("task_id").
		Where("user_id = ?", userID)

	if err := s.db.Where("id NOT IN (?)", completed).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
