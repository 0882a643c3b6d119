// handlers/teasers.go
package handlers

import (
	"errors"
	"time"

	"enigmaquest/database"
	"enigmaquest/middleware"
	"enigmaquest/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SubmitSolutionRequest struct {
	TeaserID uint   `json:"teaser_id"`
	Solution string `json:"solution"`
}

// submissionVerdict classifies a solution submission.
type submissionVerdict int

const (
	verdictCorrect submissionVerdict = iota
	verdictIncorrect
	verdictAlreadySolved
)

// evaluateSubmission decides the outcome of a submission. A user already in
// the winners set is rejected even when the answer is correct, so points are
// never awarded twice for one teaser.
func evaluateSubmission(teaser *models.Teaser, submitted string, alreadySolved bool) submissionVerdict {
	if alreadySolved {
		return verdictAlreadySolved
	}
	if !teaser.MatchesSolution(submitted) {
		return verdictIncorrect
	}
	return verdictCorrect
}

// GetTodayTeaser returns the active teaser whose publish date falls within
// the current day. The solution field is never serialized.
func GetTodayTeaser(c *fiber.Ctx) error {
	db := database.GetDB()

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	var teaser models.Teaser
	err := db.Where("publish_date >= ? AND publish_date < ? AND is_active = ?", startOfDay, endOfDay, true).
		First(&teaser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "No brain teaser available for today",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Error fetching today's brain teaser",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"teaser":  teaser,
	})
}

// SubmitSolution checks a submitted answer and, when correct, awards points
// and advances the world state.
func SubmitSolution(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req SubmitSolutionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	db := database.GetDB()

	var teaser models.Teaser
	if err := db.First(&teaser, req.TeaserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Brain teaser not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error submitting solution"})
	}

	// One win per user per teaser
	var winCount int64
	if err := db.Table("teaser_winners").
		Where("teaser_id = ? AND user_id = ?", teaser.ID, userID).
		Count(&winCount).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error submitting solution"})
	}

	switch evaluateSubmission(&teaser, req.Solution, winCount > 0) {
	case verdictAlreadySolved:
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "You have already solved this brain teaser",
		})
	case verdictIncorrect:
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Incorrect solution",
			"correct": false,
		})
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	settings, err := models.GetSettings(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error loading settings"})
	}
	award := settings.PointsPerSolve
	if award <= 0 {
		award = 1
	}

	if err := db.Model(&teaser).Association("Winners").Append(&user); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error recording win"})
	}
	if err := db.Model(&user).Association("SolvedTeasers").Append(&teaser); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error recording solve"})
	}

	user.Points += award
	if err := db.Model(&user).Update("points", user.Points).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error awarding points"})
	}

	now := time.Now()
	if err := advanceWorldState(db, award, now); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error updating game state"})
	}
	if err := advanceUserStreak(db, userID, now); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error updating streak"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"correct": true,
		"message": "Correct solution!",
		"points":  user.Points,
	})
}

// advanceWorldState applies a correct solve to the global world-progress
// record: award points, recompute the attack interval, then the level-up and
// peace checks, and fold in the streak update before the single save.
func advanceWorldState(db *gorm.DB, points int, now time.Time) error {
	var gameState models.GameState
	if err := db.Where("user_id IS NULL").First(&gameState).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		gameState = *models.NewGameState(now)
	}

	gameState.TotalPoints += points
	gameState.UpdateCreatureAttackInterval()
	gameState.CheckLevelUp()
	gameState.CheckEnigmaticPeace()
	gameState.UpdateStreak(now)

	return db.Save(&gameState).Error
}

// advanceUserStreak updates the caller's own streak record, creating it on
// first solve. The stats endpoint reads from this scope.
func advanceUserStreak(db *gorm.DB, userID uint, now time.Time) error {
	var gameState models.GameState
	if err := db.Where("user_id = ?", userID).First(&gameState).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		gameState = *models.NewGameState(now)
		gameState.UserID = &userID
	}

	gameState.UpdateStreak(now)
	return db.Save(&gameState).Error
}
