// handlers/auth.go - Registration, login and the authenticated profile
package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"astrocrew/auth"
	"astrocrew/middleware"
	"astrocrew/services"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	TeamName string `json:"team_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
}

type ProfileResponse struct {
	Message   string `json:"message"`
	UserSince string `json:"user_since"`
}

// Register creates a user under the requested team.
// POST /api/register
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(ErrorResponse{Error: "Invalid request body"})
	}

	_, err := userService.Register(req.Email, req.Username, req.Password, req.TeamName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrConflict):
			return c.Status(400).JSON(ErrorResponse{Error: err.Error()})
		default:
			return c.Status(500).JSON(ErrorResponse{Error: "Failed to register user"})
		}
	}

	return c.Status(201).JSON(MessageResponse{Message: "User registered successfully"})
}

// Login verifies credentials and issues a bearer token.
// POST /api/login
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(ErrorResponse{Error: "Invalid request body"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(ErrorResponse{Error: "Email and password are required"})
	}

	user, err := userService.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(401).JSON(ErrorResponse{Error: "Invalid email or password"})
		}
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to log in"})
	}

	token, err := auth.IssueToken(cfg.JWTSecret, user.ID, user.Email)
	if err != nil {
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to generate token"})
	}

	return c.JSON(LoginResponse{AccessToken: token, Email: user.Email})
}

// Protected returns the authenticated user's profile.
// GET /api/protected
func Protected(c *fiber.Ctx) error {
	email, err := middleware.GetEmail(c)
	if err != nil {
		return c.Status(401).JSON(ErrorResponse{Error: "Unauthorized"})
	}

	user, err := userService.GetByEmail(email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(ErrorResponse{Error: "User not found"})
		}
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to fetch user"})
	}

	return c.JSON(ProfileResponse{
		Message:   fmt.Sprintf("Hello %s! This is a protected route.", user.Email),
		UserSince: user.CreatedAt.Format("2006-01-02 15:04:05"),
	})
}
