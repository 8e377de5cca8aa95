package models

import (
	"time"

	"gorm.io/gorm"
)

type Expense struct {
	gorm.Model
	UserID   uint      `gorm:"not null;index" json:"userId"`
	Icon     string    `json:"icon"`
	Category string    `gorm:"not null" json:"category"` // e.g. "Rent", "Groceries"
	Amount   float64   `gorm:"not null" json:"amount"`
	Date     time.Time `gorm:"index" json:"date"`
}
