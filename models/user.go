package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FullName        string    `json:"fullName"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	Password        string    `gorm:"not null" json:"-"`
	ProfileImageURL string    `json:"profileImageUrl"`
	ResetToken      string    `json:"-"`
	ResetTokenExp   time.Time `json:"-"`
}
