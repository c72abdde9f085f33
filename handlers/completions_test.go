package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"astrocrew/models"
)

func registerAndLogin(t *testing.T, app *fiber.App, email, username, team string) string {
	t.Helper()

	resp, _ := doJSON(t, app, "POST", "/api/register", "", RegisterRequest{
		Email: email, Username: username, Password: "pw", TeamName: team,
	})
	if resp.StatusCode != 201 {
		t.Fatalf("register %s = %d, want 201", email, resp.StatusCode)
	}

	resp, body := doJSON(t, app, "POST", "/api/login", "", LoginRequest{Email: email, Password: "pw"})
	if resp.StatusCode != 200 {
		t.Fatalf("login %s = %d, want 200", email, resp.StatusCode)
	}
	token, _ := body["access_token"].(string)
	if token == "" {
		t.Fatalf("login %s returned no token", email)
	}
	return token
}

func TestCompleteTaskFlow(t *testing.T) {
	app, db := newTestApp(t)

	task := models.Task{Name: "Photograph the launch pad", Points: 10, CreatedAt: time.Now().UTC()}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("seed task: %v", err)
	}

	token := registerAndLogin(t, app, "a@x.com", "alice", "Red Team")
	path := fmt.Sprintf("/api/tasks/%d/complete", task.ID)

	// Missing file key.
	resp, _ := doJSON(t, app, "POST", path, token, CompleteTaskRequest{})
	if resp.StatusCode != 400 {
		t.Fatalf("missing file_key = %d, want 400", resp.StatusCode)
	}

	resp, body := doJSON(t, app, "POST", path, token, CompleteTaskRequest{FileKey: "abc_pad.jpg"})
	if resp.StatusCode != 201 {
		t.Fatalf("complete = %d, want 201 (%v)", resp.StatusCode, body)
	}
	photoURL, _ := body["photo_url"].(string)
	if !strings.Contains(photoURL, "abc_pad.jpg") {
		t.Errorf("photo_url = %q, should contain the file key", photoURL)
	}

	// Repeat completion rejected, ledger unchanged.
	resp, _ = doJSON(t, app, "POST", path, token, CompleteTaskRequest{FileKey: "abc_pad.jpg"})
	if resp.StatusCode != 409 {
		t.Fatalf("repeat complete = %d, want 409", resp.StatusCode)
	}
	var count int64
	db.Model(&models.Completion{}).Count(&count)
	if count != 1 {
		t.Errorf("ledger rows = %d, want 1", count)
	}

	// Unknown task.
	resp, _ = doJSON(t, app, "POST", "/api/tasks/999/complete", token, CompleteTaskRequest{FileKey: "abc_pad.jpg"})
	if resp.StatusCode != 404 {
		t.Fatalf("unknown task = %d, want 404", resp.StatusCode)
	}
}

func TestCompleteTaskVanishedUser(t *testing.T) {
	app, db := newTestApp(t)

	task := models.Task{Name: "Photograph the launch pad", Points: 10, CreatedAt: time.Now().UTC()}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("seed task: %v", err)
	}

	token := registerAndLogin(t, app, "a@x.com", "alice", "Red Team")

	// The account is removed while the token is still valid.
	if err := db.Where("email = ?", "a@x.com").Delete(&models.User{}).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}

	resp, body := doJSON(t, app, "POST", fmt.Sprintf("/api/tasks/%d/complete", task.ID), token, CompleteTaskRequest{FileKey: "a.jpg"})
	if resp.StatusCode != 404 {
		t.Fatalf("vanished user = %d, want 404 (%v)", resp.StatusCode, body)
	}
	if body["error"] != "User not found" {
		t.Errorf("error = %v, want User not found", body["error"])
	}
}

func TestTeamPointsEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	task1 := models.Task{Name: "Photograph the launch pad", Points: 10, CreatedAt: time.Now().UTC()}
	task2 := models.Task{Name: "Spot the station overhead", Points: 5, CreatedAt: time.Now().UTC()}
	if err := db.Create(&task1).Error; err != nil {
		t.Fatalf("seed task1: %v", err)
	}
	if err := db.Create(&task2).Error; err != nil {
		t.Fatalf("seed task2: %v", err)
	}

	alice := registerAndLogin(t, app, "a@x.com", "alice", "Red Team")
	bob := registerAndLogin(t, app, "b@x.com", "bob", "Red Team")

	resp, _ := doJSON(t, app, "POST", fmt.Sprintf("/api/tasks/%d/complete", task1.ID), alice, CompleteTaskRequest{FileKey: "a.jpg"})
	if resp.StatusCode != 201 {
		t.Fatalf("alice complete = %d, want 201", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, "POST", fmt.Sprintf("/api/tasks/%d/complete", task2.ID), bob, CompleteTaskRequest{FileKey: "b.jpg"})
	if resp.StatusCode != 201 {
		t.Fatalf("bob complete = %d, want 201", resp.StatusCode)
	}

	req := httptest.NewRequest("GET", "/api/teams/points", nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("teams/points: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		t.Fatalf("teams/points = %d, want 200", res.StatusCode)
	}

	var totals []struct {
		TeamName    string `json:"team_name"`
		TotalPoints int    `json:"total_points"`
	}
	raw, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(raw, &totals); err != nil {
		t.Fatalf("decode totals: %v (%s)", err, raw)
	}
	if len(totals) != 1 || totals[0].TeamName != "Red Team" || totals[0].TotalPoints != 15 {
		t.Errorf("totals = %+v, want [(Red Team, 15)]", totals)
	}
}
