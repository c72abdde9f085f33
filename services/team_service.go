// services/team_service.go - Team registry
package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"astrocrew/models"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// FindOrCreate looks a team up by exact name and creates it with a fresh
// join code when absent.
func (s *TeamService) FindOrCreate(name string) (*models.Team, error) {
	var team *models.Team
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		team, txErr = findOrCreateTeam(tx, name)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// GetByID retrieves a team by ID.
func (s *TeamService) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: team %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &team, nil
}

// GetByJoinCode retrieves a team by its join code.
func (s *TeamService) GetByJoinCode(code string) (*models.Team, error) {
	var team models.Team
	if err := s.db.Where("join_code = ?", code).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: team with join code %q", ErrNotFound, code)
		}
		return nil, err
	}
	return &team, nil
}

// Delete removes a team. Members are detached, not deleted: their team
// reference is set to NULL in the same transaction.
func (s *TeamService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("team_id = ?", id).
			Update("team_id", nil).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Team{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: team %d", ErrNotFound, id)
		}
		return nil
	})
}

// findOrCreateTeam runs inside the caller's transaction so registration
// can resolve the team and insert the user atomically.
//
// Two writers racing to create the same brand-new team name both pass the
// lookup and one insert loses on the unique constraint. That conflict
// means the team now exists, so the loser re-fetches and proceeds. The
// insert runs under a savepoint: on Postgres a unique violation aborts
// the whole open transaction (SQLSTATE 25P02), so the loser must roll
// back to the savepoint before it can query again.
func findOrCreateTeam(tx *gorm.DB, name string) (*models.Team, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrValidation)
	}

	const sp = "find_or_create_team"
	for attempt := 0; attempt < 3; attempt++ {
		var team models.Team
		err := tx.Where("name = ?", name).First(&team).Error
		if err == nil {
			return &team, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		code, err := generateJoinCode(tx)
		if err != nil {
			return nil, err
		}

		team = models.Team{
			Name:      name,
			JoinCode:  code,
			CreatedAt: time.Now().UTC(),
		}
		if err := tx.SavePoint(sp).Error; err != nil {
			return nil, err
		}
		err = tx.Create(&team).Error
		if err == nil {
			return &team, nil
		}
		// Name or join code collided with a concurrent writer; release the
		// aborted insert, then loop to re-fetch by name or retry with a
		// fresh code.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := tx.RollbackTo(sp).Error; err != nil {
				return nil, err
			}
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("%w: team %q", ErrConflict, name)
}

// generateJoinCode returns a 6-character hex code unused by any team.
func generateJoinCode(tx *gorm.DB) (string, error) {
	for {
		bytes := make([]byte, 3)
		if _, err := rand.Read(bytes); err != nil {
			return "", err
		}
		code := hex.EncodeToString(bytes)

		var count int64
		if err := tx.Model(&models.Team{}).Where("join_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
}
