package services

import (
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type FoodLogService struct {
	db *gorm.DB
}

func NewFoodLogService(db *gorm.DB) *FoodLogService {
	return &FoodLogService{db: db}
}

// CreateFoodLogInput carries the manual-log request body. Calories is a
// pointer so a missing value can be told apart from an explicit zero.
type CreateFoodLogInput struct {
	FoodName string     `json:"foodName"`
	Calories *float64   `json:"calories"`
	Protein  float64    `json:"protein"`
	Carbs    float64    `json:"carbs"`
	Fats     float64    `json:"fats"`
	MealType string     `json:"mealType"`
	EatenAt  *time.Time `json:"eatenAt"`
	ImageURL string     `json:"imageUrl"`
}

func (s *FoodLogService) Create(userID uint, in CreateFoodLogInput) (*models.FoodLog, error) {
	if in.FoodName == "" || in.Calories == nil {
		return nil, &ValidationError{Message: "Food name and calories are required"}
	}
	if *in.Calories < 0 {
		return nil, &ValidationError{Message: "Calories must be a non-negative number"}
	}
	if in.MealType != "" && !models.ValidMealType(in.MealType) {
		return nil, &ValidationError{Message: "mealType must be one of Breakfast, Lunch, Dinner, Snack"}
	}

	entry := &models.FoodLog{
		UserID:   userID,
		FoodName: in.FoodName,
		Calories: *in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
		MealType: in.MealType,
		ImageURL: in.ImageURL,
	}
	if in.EatenAt != nil {
		entry.EatenAt = *in.EatenAt
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns the caller's logs newest first, optionally bounded to the
// inclusive day range [startDate 00:00:00, endDate 23:59:59.999]. Either
// bound alone is valid. Dates are "2006-01-02" in server-local time.
func (s *FoodLogService) List(userID uint, startDate, endDate string) ([]models.FoodLog, error) {
	q := s.db.Where("user_id = ?", userID)
	if startDate != "" {
		day, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
		if err != nil {
			return nil, ErrInvalidDate
		}
		q = q.Where("eaten_at >= ?", startOfDay(day))
	}
	if endDate != "" {
		day, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
		if err != nil {
			return nil, ErrInvalidDate
		}
		q = q.Where("eaten_at <= ?", endOfDay(day))
	}

	var logs []models.FoodLog
	err := q.Order("eaten_at DESC").Find(&logs).Error
	return logs, err
}

func (s *FoodLogService) Delete(userID, logID uint) error {
	var entry models.FoodLog
	if err := s.db.First(&entry, logID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if entry.UserID != userID {
		return ErrForbidden
	}
	return s.db.Delete(&entry).Error
}

type CalorieSummary struct {
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFats     float64 `json:"totalFats"`
	LogCount      int     `json:"logCount"`
}

// TodaySummary reduces the caller's entries for the current calendar day
// (server-local, inclusive day bounds) to running totals. Zero entries
// yield an all-zero summary.
func (s *FoodLogService) TodaySummary(userID uint) (*CalorieSummary, error) {
	now := time.Now()
	var logs []models.FoodLog
	err := s.db.
		Where("user_id = ? AND eaten_at >= ? AND eaten_at <= ?", userID, startOfDay(now), endOfDay(now)).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	sum := &CalorieSummary{LogCount: len(logs)}
	for _, l := range logs {
		sum.TotalCalories += l.Calories
		sum.TotalProtein += l.Protein
		sum.TotalCarbs += l.Carbs
		sum.TotalFats += l.Fats
	}
	return sum, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}
