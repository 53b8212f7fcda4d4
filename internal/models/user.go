package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username            string `gorm:"uniqueIndex;not null"`
	Email               string `gorm:"uniqueIndex;not null"`
	Password            string `gorm:"not null"`
	Name                string `gorm:"not null"` // display name stamped on submissions
	Phone               string
	AgentName           string `gorm:"not null"` // servicing agent identity in the processing system
	Role                string `gorm:"default:'user'"`
	Status              string `gorm:"default:'active'"`
	LastLoginAt         time.Time
	LastLoginIP         string
	FailedLoginAttempts int `gorm:"default:0"`
	TokenVersion        int `gorm:"default:1"`
}
