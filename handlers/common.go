// handlers/common.go - Handler wiring and shared response types
package handlers

import (
	"gorm.io/gorm"

	"astrocrew/config"
	"astrocrew/services"
	"astrocrew/storage"
)

var (
	cfg *config.Config

	userService        *services.UserService
	teamService        *services.TeamService
	taskService        *services.TaskService
	completionService  *services.CompletionService
	leaderboardService *services.LeaderboardService
	postService        *services.PostService

	photoStore *storage.PhotoStore
)

// Init wires the services every handler depends on. Must be called after
// the database is up and before any route is served.
func Init(db *gorm.DB, conf *config.Config, store *storage.PhotoStore) {
	if db == nil {
		panic("handlers.Init called without a database")
	}

	cfg = conf
	userService = services.NewUserService(db)
	teamService = services.NewTeamService(db)
	taskService = services.NewTaskService(db)
	completionService = services.NewCompletionService(db)
	leaderboardService = services.NewLeaderboardService(db)
	postService = services.NewPostService(db)
	photoStore = store
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
