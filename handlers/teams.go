// handlers/teams.go - Team lookup and leaderboard
package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"astrocrew/services"
)

// GetTeamPoints returns every team's summed completion points, highest
// first. Teams whose members completed nothing are omitted.
// GET /api/teams/points
func GetTeamPoints(c *fiber.Ctx) error {
	totals, err := leaderboardService.TeamTotals()
	if err != nil {
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to fetch team points"})
	}
	return c.JSON(totals)
}

// GetTeam returns a single team by ID.
// GET /api/teams/:id
func GetTeam(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(ErrorResponse{Error: "Invalid team id"})
	}

	team, err := teamService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(ErrorResponse{Error: "Team not found"})
		}
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to fetch team"})
	}

	return c.JSON(team)
}
