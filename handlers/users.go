// handlers/users.go
package handlers

import (
	"bytes"
	"encoding/json"

	"enigmaquest/database"
	"enigmaquest/middleware"
	"enigmaquest/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// ProfileUpdateRequest enumerates the only mutable profile fields. Requests
// carrying any other key are rejected at decode time.
type ProfileUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// GetProfile returns the authenticated user's profile with solved teasers.
func GetProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.Preload("SolvedTeasers").First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"id":             user.ID,
		"username":       user.Username,
		"email":          user.Email,
		"points":         user.Points,
		"role":           user.Role,
		"solved_teasers": user.SolvedTeasers,
	})
}

// UpdateProfile applies a partial profile update limited to username, email
// and password.
func UpdateProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req ProfileUpdateRequest
	if err := decodeStrict(c.Body(), &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid updates"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to hash password"})
		}
		updates["password"] = string(hashed)
	}

	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Error updating profile"})
		}
		db.First(&user, userID)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    userInfo(&user),
	})
}

// GetLeaderboard returns the top 10 users by points. Ties fall back to
// database default order.
func GetLeaderboard(c *fiber.Ctx) error {
	db := database.GetDB()

	type Entry struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Points   int    `json:"points"`
	}

	var entries []Entry
	if err := db.Model(&models.User{}).
		Select("id, username, points").
		Order("points DESC").
		Limit(10).
		Scan(&entries).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error fetching leaderboard"})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"leaderboard": entries,
	})
}

// GetUserStats returns solve count, streaks and global rank for the caller.
// Rank is 1 + the number of users with strictly more points; equal scores
// share a rank.
func GetUserStats(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	// Streaks live on the user-scoped world-progress record, zero if absent
	currentStreak := 0
	longestStreak := 0
	var gameState models.GameState
	if err := db.Where("user_id = ?", userID).First(&gameState).Error; err == nil {
		currentStreak = gameState.CurrentStreak
		longestStreak = gameState.LongestStreak
	}

	var totalSolved int64
	db.Table("user_solved_teasers").Where("user_id = ?", userID).Count(&totalSolved)

	var higher int64
	db.Model(&models.User{}).Where("points > ?", user.Points).Count(&higher)

	return c.JSON(fiber.Map{
		"success":        true,
		"total_solved":   totalSolved,
		"current_streak": currentStreak,
		"longest_streak": longestStreak,
		"rank":           higher + 1,
		"points":         user.Points,
	})
}

// decodeStrict unmarshals JSON rejecting unknown fields.
func decodeStrict(body []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
