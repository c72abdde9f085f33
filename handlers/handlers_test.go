package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"astrocrew/config"
	"astrocrew/middleware"
	"astrocrew/models"
	"astrocrew/storage"
)

const testSecret = "handler-test-secret-32-characters-ok"

// newTestApp wires the handlers against an in-memory database and
// registers the API routes the way main does.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.Team{}, &models.User{}, &models.Task{},
		&models.Completion{}, &models.Post{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	store, err := storage.NewPhotoStore("localhost:9000", "test", "test", "proof-photos", false)
	if err != nil {
		t.Fatalf("photo store: %v", err)
	}

	Init(db, &config.Config{JWTSecret: testSecret}, store)

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/register", Register)
	api.Post("/login", Login)
	api.Get("/protected", middleware.AuthMiddleware, Protected)
	api.Get("/tasks", middleware.AuthMiddleware, GetTasks)
	api.Post("/tasks/:id/complete", middleware.AuthMiddleware, CompleteTask)
	api.Get("/teams/points", GetTeamPoints)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	decoded := map[string]interface{}{}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("%s %s: invalid JSON response %q", method, path, raw)
		}
	}
	return resp, decoded
}
