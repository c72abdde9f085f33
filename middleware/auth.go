// middleware/auth.go
package middleware

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"astrocrew/auth"
)

// AuthMiddleware requires a valid bearer token and stores the caller's
// identity in the request context. Expired and malformed tokens are
// logged apart but both answer 401.
func AuthMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(401).JSON(fiber.Map{"error": "Missing authorization header"})
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization header format"})
	}

	claims, err := auth.VerifyToken(os.Getenv("JWT_SECRET"), parts[1])
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			log.Printf("auth: expired token from %s", c.IP())
			return c.Status(401).JSON(fiber.Map{"error": "Token expired"})
		}
		log.Printf("auth: rejected token from %s", c.IP())
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals("userId", claims.UserID)
	c.Locals("email", claims.Email)

	return c.Next()
}

// GetUserID returns the authenticated user ID set by AuthMiddleware.
func GetUserID(c *fiber.Ctx) (uint, error) {
	userID := c.Locals("userId")
	if userID == nil {
		return 0, fiber.NewError(401, "User not authenticated")
	}

	if id, ok := userID.(uint); ok {
		return id, nil
	}

	return 0, fiber.NewError(401, "Invalid user ID format")
}

// GetEmail returns the authenticated email set by AuthMiddleware.
func GetEmail(c *fiber.Ctx) (string, error) {
	email := c.Locals("email")
	if email == nil {
		return "", fiber.NewError(401, "User not authenticated")
	}

	if e, ok := email.(string); ok {
		return e, nil
	}

	return "", fiber.NewError(401, "Invalid email format")
}
