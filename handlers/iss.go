// handlers/iss.go - Station position proxy
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

const issNowURL = "http://api.open-notify.org/iss-now.json"

var issClient = &http.Client{Timeout: 5 * time.Second}

type ISSPositionResponse struct {
	Message     string `json:"message"`
	Timestamp   int64  `json:"timestamp"`
	ISSPosition struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"iss_position"`
}

// GetISSPosition proxies the open-notify station tracker so browsers are
// not blocked by its missing HTTPS/CORS. Best-effort feature: failures
// surface the upstream error unmasked.
// GET /api/iss-now
func GetISSPosition(c *fiber.Ctx) error {
	resp, err := issClient.Get(issNowURL)
	if err != nil {
		return c.Status(502).JSON(ErrorResponse{Error: err.Error()})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.Status(502).JSON(ErrorResponse{Error: "ISS tracker returned " + resp.Status})
	}

	var position ISSPositionResponse
	if err := json.NewDecoder(resp.Body).Decode(&position); err != nil {
		return c.Status(502).JSON(ErrorResponse{Error: "Invalid response from ISS tracker"})
	}

	return c.JSON(position)
}
