// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"enigmaquest/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Teaser{},
		&models.GameState{},
		&models.GameSettings{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes beyond what AutoMigrate declares
func createIndexes() {
	db := GetDB()

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_points ON users(points DESC)")

	// Teaser indexes: today's-teaser lookup filters on both columns
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teasers_active_publish ON teasers(is_active, publish_date)")

	// Game state: one global row (user_id IS NULL) plus per-user rows
	db.Exec("CREATE INDEX IF NOT EXISTS idx_game_states_user ON game_states(user_id)")
}
