package models

import (
	"time"

	"gorm.io/gorm"
)

type Income struct {
	gorm.Model
	UserID uint      `gorm:"not null;index" json:"userId"`
	Icon   string    `json:"icon"`
	Source string    `gorm:"not null" json:"source"` // e.g. "Salary", "Freelance"
	Amount float64   `gorm:"not null" json:"amount"`
	Date   time.Time `gorm:"index" json:"date"`
}
