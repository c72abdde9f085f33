// handlers/completions.go - Completion ledger endpoints
package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"astrocrew/middleware"
	"astrocrew/services"
)

type CompleteTaskRequest struct {
	FileKey string `json:"file_key"`
}

type CompleteTaskResponse struct {
	Message  string `json:"message"`
	PhotoURL string `json:"photo_url"`
}

type RecentCompletionsResponse struct {
	Completions []services.RecentEntry `json:"completions"`
}

// CompleteTask records the caller's completion of a task. The file key
// must point at a photo already uploaded via the pre-signed URL flow.
// POST /api/tasks/:id/complete
func CompleteTask(c *fiber.Ctx) error {
	taskID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(ErrorResponse{Error: "Invalid task id"})
	}

	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(ErrorResponse{Error: "Unauthorized"})
	}
	user, err := userService.GetByID(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(ErrorResponse{Error: "User not found"})
		}
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to fetch user"})
	}

	var req CompleteTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(ErrorResponse{Error: "Invalid request body"})
	}
	if req.FileKey == "" {
		return c.Status(400).JSON(ErrorResponse{Error: "file_key is required"})
	}

	photoURL := photoStore.PhotoURL(req.FileKey)

	_, err = completionService.Record(user.ID, uint(taskID), photoURL)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return c.Status(404).JSON(ErrorResponse{Error: "Task not found"})
		case errors.Is(err, services.ErrConflict):
			return c.Status(409).JSON(ErrorResponse{Error: "Task already completed"})
		default:
			return c.Status(500).JSON(ErrorResponse{Error: "Failed to record completion"})
		}
	}

	return c.Status(201).JSON(CompleteTaskResponse{
		Message:  "Task marked as completed",
		PhotoURL: photoURL,
	})
}

// GetRecentCompletions returns the newest ledger entries for the feed.
// GET /api/user-tasks/recent/:limit
func GetRecentCompletions(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Params("limit"))
	if err != nil || limit < 1 {
		limit = 5
	}

	entries, err := completionService.Recent(limit)
	if err != nil {
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to fetch completions"})
	}

	return c.JSON(RecentCompletionsResponse{Completions: entries})
}
