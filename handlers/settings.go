// handlers/settings.go
package handlers

import (
	"enigmaquest/database"
	"enigmaquest/models"

	"github.com/gofiber/fiber/v2"
)

// GetSettings returns the game settings, creating the row with defaults on
// first read.
func GetSettings(c *fiber.Ctx) error {
	settings, err := models.GetSettings(database.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error fetching settings"})
	}
	return c.JSON(settings)
}
