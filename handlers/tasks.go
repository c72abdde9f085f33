// handlers/tasks.go - Task catalog endpoints
package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"astrocrew/middleware"
	"astrocrew/services"
)

// GetTasks returns the whole catalog.
// GET /api/tasks
func GetTasks(c *fiber.Ctx) error {
	tasks, err := taskService.List()
	if err != nil {
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to fetch tasks"})
	}
	return c.JSON(tasks)
}

// GetTask returns a single task by ID.
// GET /api/tasks/:id
func GetTask(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(ErrorResponse{Error: "Invalid task id"})
	}

	task, err := taskService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(ErrorResponse{Error: "Task not found"})
		}
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to fetch task"})
	}

	return c.JSON(task)
}

// GetTasksNotCompleted returns the tasks the caller has not completed yet.
// GET /api/tasks/not-completed
func GetTasksNotCompleted(c *fiber.Ctx) error {
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

	tasks, err := taskService.ListNotCompletedBy(user.ID)
	if err != nil {
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to fetch tasks"})
	}

	return c.JSON(tasks)
}
