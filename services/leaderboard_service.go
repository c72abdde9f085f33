// services/leaderboard_service.go - Team point totals
package services

import (
	"gorm.io/gorm"
)

type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// TeamPoints is one leaderboard row.
type TeamPoints struct {
	TeamName    string `json:"team_name"`
	TotalPoints int    `json:"total_points"`
}

// TeamTotals sums task points over every completion whose user belongs to
// the team, highest first. Inner-join semantics: a team whose members have
// no completions is omitted entirely rather than reported with zero.
func (s *LeaderboardService) TeamTotals() ([]TeamPoints, error) {
	totals := []TeamPoints{}
	err := s.db.Table("teams").
		Select("teams.name AS team_name, COALESCE(SUM(tasks.points), 0) AS total_points").
		Joins("JOIN users ON users.team_id = teams.id").
		Joins("JOIN completions ON completions.user_id = users.id").
		Joins("JOIN tasks ON tasks.id = completions.task_id").
		Group("teams.name").
		Order("total_points DESC").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}
