// handlers/upload.go - Pre-signed proof photo uploads
package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PresignedURLRequest struct {
	FileName string `json:"file_name"`
}

type PresignedURLResponse struct {
	URL     string `json:"url"`
	FileKey string `json:"file_key"`
}

var allowedExtensions = map[string]bool{
	"jpeg": true,
	"jpg":  true,
	"png":  true,
}

// GeneratePresignedURL hands the client a URL to PUT a proof photo
// straight into object storage, valid for one hour.
// POST /api/generate-presigned-url
func GeneratePresignedURL(c *fiber.Ctx) error {
	var req PresignedURLRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(ErrorResponse{Error: "Invalid request body"})
	}
	if req.FileName == "" {
		return c.Status(400).JSON(ErrorResponse{Error: "file_name is required"})
	}

	parts := strings.Split(req.FileName, ".")
	ext := strings.ToLower(parts[len(parts)-1])
	if len(parts) < 2 || !allowedExtensions[ext] {
		return c.Status(400).JSON(ErrorResponse{Error: "Invalid file type. Only jpeg, jpg, or png allowed."})
	}

	fileKey := fmt.Sprintf("%s_%s", strings.ReplaceAll(uuid.New().String(), "-", ""), req.FileName)

	url, err := photoStore.PresignedUploadURL(c.UserContext(), fileKey, time.Hour)
	if err != nil {
		// Best-effort external dependency: surface the failure unmasked.
		return c.Status(500).JSON(ErrorResponse{Error: err.Error()})
	}

	return c.JSON(PresignedURLResponse{URL: url, FileKey: fileKey})
}
