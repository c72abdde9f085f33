// handlers/users.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"astrocrew/models"
	"astrocrew/services"
)

type UserListResponse struct {
	Users []models.User `json:"users"`
}

// GetUsers returns all users.
// GET /api/users
func GetUsers(c *fiber.Ctx) error {
	users, err := userService.List()
	if err != nil {
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to fetch users"})
	}
	return c.JSON(UserListResponse{Users: users})
}

// GetUser returns a single user by ID.
// GET /api/users/:id
func GetUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(ErrorResponse{Error: "Invalid user id"})
	}

	user, err := userService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(ErrorResponse{Error: "User not found"})
		}
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to fetch user"})
	}

	return c.JSON(user)
}

// GetUsersByTeam returns the members of a team. A team with no members
// yields an empty list, not a 404.
// GET /api/users/team/:teamId
func GetUsersByTeam(c *fiber.Ctx) error {
	teamID, err := strconv.ParseUint(c.Params("teamId"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(ErrorResponse{Error: "Invalid team id"})
	}

	users, err := userService.ListByTeam(uint(teamID))
	if err != nil {
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to fetch users"})
	}

	return c.JSON(UserListResponse{Users: users})
}
