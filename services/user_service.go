// services/user_service.go - User registry and authentication
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"astrocrew/auth"
	"astrocrew/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a user under the named team, creating the team first
// if it does not exist yet. Team resolution and user insert share one
// transaction: either both commit or neither is visible.
func (s *UserService) Register(email, username, password, teamName string) (*models.User, error) {
	if email == "" || username == "" || password == "" || teamName == "" {
		return nil, fmt.Errorf("%w: email, username, password and team_name are required", ErrValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var user *models.User
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: email already registered", ErrConflict)
		}

		if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: username already taken", ErrConflict)
		}

		team, err := findOrCreateTeam(tx, teamName)
		if err != nil {
			return err
		}

		u := models.User{
			Email:        email,
			Username:     username,
			PasswordHash: hash,
			TeamID:       &team.ID,
			CreatedAt:    time.Now().UTC(),
		}
		if err := tx.Create(&u).Error; err != nil {
			// Race with a concurrent registration past the pre-checks.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: email or username already registered", ErrConflict)
			}
			return err
		}

		user = &u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies email and password. Unknown email and wrong
// password fail with the same error.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email.
func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, err
	}
	return &user, nil
}

// List returns all users.
func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListByTeam returns all members of a team. A team with no members yields
// an empty list, not an error.
func (s *UserService) ListByTeam(teamID uint) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.Where("team_id = ?", teamID).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes a user together with their completions and feed posts
// in one transaction. The cascade is explicit storage-layer logic, not an
// ORM annotation.
func (s *UserService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Completion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil
	})
}
