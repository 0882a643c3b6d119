// models/settings.go - Tunable game settings (singleton row)
package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// GameSettings holds the operator-tunable knobs. A single row exists; it is
// created with defaults the first time it is read.
type GameSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatureAttackInterval  int     `gorm:"default:60" json:"creature_attack_interval"` // minutes, min 5
	PointsPerSolve          int     `gorm:"default:1" json:"points_per_solve"`
	StreakBonus             float64 `gorm:"default:0.5" json:"streak_bonus"`
	EnigmaticPeaceThreshold int     `gorm:"default:10" json:"enigmatic_peace_threshold"`

	IsEnigmaticPeaceEnabled  bool `gorm:"default:true" json:"is_enigmatic_peace_enabled"`
	IsCreatureAttacksEnabled bool `gorm:"default:true" json:"is_creature_attacks_enabled"`

	MaxDailyTeasers int  `gorm:"default:1" json:"max_daily_teasers"`
	MaintenanceMode bool `gorm:"default:false" json:"maintenance_mode"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultGameSettings returns the settings used when no row exists yet.
func DefaultGameSettings() GameSettings {
	return GameSettings{
		CreatureAttackInterval:   60,
		PointsPerSolve:           1,
		StreakBonus:              0.5,
		EnigmaticPeaceThreshold:  10,
		IsEnigmaticPeaceEnabled:  true,
		IsCreatureAttacksEnabled: true,
		MaxDailyTeasers:          1,
	}
}

// GetSettings fetches the settings row, creating it with defaults if absent.
func GetSettings(db *gorm.DB) (*GameSettings, error) {
	var settings GameSettings
	err := db.First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = DefaultGameSettings()
	if err := db.Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}
