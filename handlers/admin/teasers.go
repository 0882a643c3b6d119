// handlers/admin/teasers.go
package admin

import (
	"bytes"
	"encoding/json"
	"time"

	"enigmaquest/database"
	"enigmaquest/models"
	"enigmaquest/services"

	"github.com/gofiber/fiber/v2"
)

type CreateTeaserRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Solution    string `json:"solution"`
	Difficulty  string `json:"difficulty"`
	PublishDate string `json:"publish_date"`
	ImageURL    string `json:"image_url"`
}

// TeaserUpdateRequest enumerates the mutable teaser fields. Unknown keys in
// the request body fail the strict decode.
type TeaserUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Solution    *string `json:"solution"`
	Difficulty  *string `json:"difficulty"`
	PublishDate *string `json:"publish_date"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
}

type GenerateTeaserRequest struct {
	Prompt     string `json:"prompt"`
	Difficulty string `json:"difficulty"`
}

// CreateTeaser creates a new brain teaser. All fields except the image are
// required.
func CreateTeaser(c *fiber.Ctx) error {
	var req CreateTeaserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Title == "" || req.Description == "" || req.Solution == "" || req.PublishDate == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Title, description, solution and publish date are required",
		})
	}

	if req.Difficulty == "" {
		req.Difficulty = models.DifficultyBeginner
	}
	if !models.IsValidDifficulty(req.Difficulty) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid difficulty"})
	}

	publishDate, err := parseDate(req.PublishDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid publish date"})
	}

	teaser := models.Teaser{
		Title:       req.Title,
		Description: req.Description,
		Solution:    req.Solution,
		Difficulty:  req.Difficulty,
		PublishDate: publishDate,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}

	db := database.GetDB()
	if err := db.Create(&teaser).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error creating brain teaser"})
	}

	return c.Status(201).JSON(teaser)
}

// GetAllTeasers lists every teaser, newest publish date first. Solutions are
// stripped by the model's serialization.
func GetAllTeasers(c *fiber.Ctx) error {
	db := database.GetDB()

	var teasers []models.Teaser
	if err := db.Order("publish_date DESC").Find(&teasers).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error fetching brain teasers"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"teasers": teasers,
	})
}

// UpdateTeaser applies a partial update. Only the whitelisted fields are
// representable; anything else is rejected at decode time.
func UpdateTeaser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid teaser id"})
	}

	var req TeaserUpdateRequest
	if err := decodeStrict(c.Body(), &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid updates"})
	}

	db := database.GetDB()

	var teaser models.Teaser
	if err := db.First(&teaser, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Brain teaser not found"})
	}

	if req.Title != nil {
		teaser.Title = *req.Title
	}
	if req.Description != nil {
		teaser.Description = *req.Description
	}
	if req.Solution != nil {
		teaser.Solution = *req.Solution
	}
	if req.Difficulty != nil {
		if !models.IsValidDifficulty(*req.Difficulty) {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid difficulty"})
		}
		teaser.Difficulty = *req.Difficulty
	}
	if req.PublishDate != nil {
		publishDate, err := parseDate(*req.PublishDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid publish date"})
		}
		teaser.PublishDate = publishDate
	}
	if req.ImageURL != nil {
		teaser.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		teaser.IsActive = *req.IsActive
	}

	if err := db.Save(&teaser).Error; err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Error updating brain teaser"})
	}

	return c.JSON(teaser)
}

// DeleteTeaser removes a teaser permanently.
func DeleteTeaser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid teaser id"})
	}

	db := database.GetDB()

	var teaser models.Teaser
	if err := db.First(&teaser, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Brain teaser not found"})
	}

	if err := db.Delete(&teaser).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error deleting brain teaser"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Brain teaser deleted successfully",
	})
}

// GenerateTeaser asks the configured language model for a teaser draft.
func GenerateTeaser(c *fiber.Ctx) error {
	if !services.GeneratorEnabled() {
		return c.Status(503).JSON(fiber.Map{
			"success": false,
			"error":   "AI features are currently disabled. Please set OPENAI_API_KEY in your environment variables.",
		})
	}

	var req GenerateTeaserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.Prompt == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Prompt is required"})
	}
	if req.Difficulty == "" {
		req.Difficulty = models.DifficultyBeginner
	}
	if !models.IsValidDifficulty(req.Difficulty) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid difficulty"})
	}

	draft, err := services.GenerateTeaser(c.Context(), req.Prompt, req.Difficulty)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error generating brain teaser"})
	}

	return c.JSON(draft)
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func decodeStrict(body []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
