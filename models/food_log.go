package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal categories accepted at write time.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
)

func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// One FoodLog per logged food item. Ownership is fixed at creation; there
// is no update path, only create/list/delete.
type FoodLog struct {
	gorm.Model
	UserID   uint      `gorm:"not null;index" json:"userId"`
	FoodName string    `gorm:"not null" json:"foodName"`
	Calories float64   `gorm:"not null" json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fats     float64   `json:"fats"`
	ImageURL string    `json:"imageUrl"`
	MealType string    `json:"mealType"`
	EatenAt  time.Time `gorm:"index" json:"eatenAt"`
}

func (f *FoodLog) BeforeCreate(tx *gorm.DB) error {
	if f.MealType == "" {
		f.MealType = MealSnack
	}
	if f.EatenAt.IsZero() {
		f.EatenAt = time.Now()
	}
	return nil
}
