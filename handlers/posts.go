// handlers/posts.go - Crew photo feed
package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"astrocrew/middleware"
	"astrocrew/models"
	"astrocrew/services"
)

type CreatePostRequest struct {
	Caption   string `json:"caption"`
	PhotoLink string `json:"photo_link"`
}

type PostListResponse struct {
	Posts []models.Post `json:"posts"`
}

// GetPosts returns the newest feed posts.
// GET /api/posts
func GetPosts(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	posts, err := postService.Recent(limit)
	if err != nil {
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to fetch posts"})
	}

	return c.JSON(PostListResponse{Posts: posts})
}

// CreatePost publishes a feed post for the caller.
// POST /api/posts
func CreatePost(c *fiber.Ctx) error {
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

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(ErrorResponse{Error: "Invalid request body"})
	}

	post, err := postService.Create(user.ID, user.Username, req.Caption, req.PhotoLink)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(400).JSON(ErrorResponse{Error: err.Error()})
		}
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to create post"})
	}

	return c.Status(201).JSON(post)
}
