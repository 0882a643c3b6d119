// handlers/admin/settings.go
package admin

import (
	"enigmaquest/database"
	"enigmaquest/models"

	"github.com/gofiber/fiber/v2"
)

// SettingsUpdateRequest enumerates the tunable knobs.
type SettingsUpdateRequest struct {
	CreatureAttackInterval   *int     `json:"creature_attack_interval"`
	PointsPerSolve           *int     `json:"points_per_solve"`
	StreakBonus              *float64 `json:"streak_bonus"`
	EnigmaticPeaceThreshold  *int     `json:"enigmatic_peace_threshold"`
	IsEnigmaticPeaceEnabled  *bool    `json:"is_enigmatic_peace_enabled"`
	IsCreatureAttacksEnabled *bool    `json:"is_creature_attacks_enabled"`
	MaxDailyTeasers          *int     `json:"max_daily_teasers"`
	MaintenanceMode          *bool    `json:"maintenance_mode"`
}

// UpdateSettings applies a partial settings update with minimum-value
// validation on the numeric knobs.
func UpdateSettings(c *fiber.Ctx) error {
	var req SettingsUpdateRequest
	if err := decodeStrict(c.Body(), &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid updates"})
	}

	db := database.GetDB()

	settings, err := models.GetSettings(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error fetching settings"})
	}

	if req.CreatureAttackInterval != nil {
		if *req.CreatureAttackInterval < 5 {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Creature attack interval must be at least 5 minutes"})
		}
		settings.CreatureAttackInterval = *req.CreatureAttackInterval
	}
	if req.PointsPerSolve != nil {
		if *req.PointsPerSolve < 1 {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Points per solve must be at least 1"})
		}
		settings.PointsPerSolve = *req.PointsPerSolve
	}
	if req.StreakBonus != nil {
		if *req.StreakBonus < 0 {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Streak bonus cannot be negative"})
		}
		settings.StreakBonus = *req.StreakBonus
	}
	if req.EnigmaticPeaceThreshold != nil {
		if *req.EnigmaticPeaceThreshold < 1 {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Peace threshold must be at least 1"})
		}
		settings.EnigmaticPeaceThreshold = *req.EnigmaticPeaceThreshold
	}
	if req.IsEnigmaticPeaceEnabled != nil {
		settings.IsEnigmaticPeaceEnabled = *req.IsEnigmaticPeaceEnabled
	}
	if req.IsCreatureAttacksEnabled != nil {
		settings.IsCreatureAttacksEnabled = *req.IsCreatureAttacksEnabled
	}
	if req.MaxDailyTeasers != nil {
		if *req.MaxDailyTeasers < 1 {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Max daily teasers must be at least 1"})
		}
		settings.MaxDailyTeasers = *req.MaxDailyTeasers
	}
	if req.MaintenanceMode != nil {
		settings.MaintenanceMode = *req.MaintenanceMode
	}

	if err := db.Save(settings).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error updating settings"})
	}

	return c.JSON(settings)
}
