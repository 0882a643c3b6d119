// handlers/gamestate.go
package handlers

import (
	"math"
	"time"

	"enigmaquest/database"
	"enigmaquest/models"

	"github.com/gofiber/fiber/v2"
)

// CreateGameState explicitly creates a fresh global world-progress record.
func CreateGameState(c *fiber.Ctx) error {
	db := database.GetDB()

	gameState := models.NewGameState(time.Now())
	if err := db.Create(gameState).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error creating game state"})
	}

	return c.Status(201).JSON(gameState)
}

// GetGameState returns the global world-progress record, creating it if none
// exists yet.
func GetGameState(c *fiber.Ctx) error {
	db := database.GetDB()

	var gameState models.GameState
	if err := db.Where("user_id IS NULL").First(&gameState).Error; err != nil {
		gameState = *models.NewGameState(time.Now())
		if err := db.Create(&gameState).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error fetching game state"})
		}
	}

	return c.JSON(gameState)
}

// CheckCreatureAttacks applies an attack if the interval has elapsed,
// otherwise reports the time remaining.
func CheckCreatureAttacks(c *fiber.Ctx) error {
	db := database.GetDB()

	settings, err := models.GetSettings(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error loading settings"})
	}
	if !settings.IsCreatureAttacksEnabled {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Creature attacks are disabled",
		})
	}

	var gameState models.GameState
	if err := db.Where("user_id IS NULL").First(&gameState).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Game state not found"})
	}

	now := time.Now()
	if gameState.ShouldCreaturesAttack(now) {
		pointsLost := gameState.HandleCreatureAttack(now)
		if err := db.Save(&gameState).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error checking creature attacks"})
		}
		return c.JSON(fiber.Map{
			"success":     true,
			"message":     "Creatures have attacked!",
			"points_lost": pointsLost,
			"new_total":   gameState.TotalPoints,
		})
	}

	elapsed := now.Sub(gameState.LastCreatureAttack).Minutes()
	return c.JSON(fiber.Map{
		"success":        true,
		"message":        "No creature attacks at this time",
		"next_attack_in": float64(gameState.CreatureAttackInterval) - elapsed,
	})
}

// GetCommunityProgress returns the public projection of the world state.
func GetCommunityProgress(c *fiber.Ctx) error {
	db := database.GetDB()

	var gameState models.GameState
	if err := db.Where("user_id IS NULL").First(&gameState).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Game state not found"})
	}

	elapsed := time.Since(gameState.LastCreatureAttack).Minutes()
	timeUntilNextAttack := math.Max(0, float64(gameState.CreatureAttackInterval)-elapsed)

	return c.JSON(fiber.Map{
		"current_level":            gameState.CurrentLevel,
		"total_points":             gameState.TotalPoints,
		"points_to_next_level":     gameState.CurrentLevel*1000 - gameState.TotalPoints,
		"is_enigmatic_peace":       gameState.IsEnigmaticPeace,
		"creature_attack_interval": gameState.CreatureAttackInterval,
		"time_until_next_attack":   timeUntilNextAttack,
	})
}
