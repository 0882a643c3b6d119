// models/user.go
package models

import (
	"time"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Username string  `gorm:"uniqueIndex;not null" json:"username"`
	Email    *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password string  `gorm:"not null" json:"-"`
	Role     string  `gorm:"default:'user'" json:"role"`

	// Accumulated points from solved teasers
	Points int `gorm:"default:0" json:"points"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`

	// Relationships
	SolvedTeasers []Teaser `gorm:"many2many:user_solved_teasers" json:"solved_teasers,omitempty"`
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
