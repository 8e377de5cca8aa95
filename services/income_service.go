package services

import (
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type IncomeService struct {
	db *gorm.DB
}

func NewIncomeService(db *gorm.DB) *IncomeService {
	return &IncomeService{db: db}
}

type AddIncomeInput struct {
	Icon   string     `json:"icon"`
	Source string     `json:"source"`
	Amount *float64   `json:"amount"`
	Date   *time.Time `json:"date"`
}

func (s *IncomeService) Add(userID uint, in AddIncomeInput) (*models.Income, error) {
	if in.Source == "" || in.Amount == nil || in.Date == nil {
		return nil, &ValidationError{Message: "All fields are required"}
	}
	income := &models.Income{
		UserID: userID,
		Icon:   in.Icon,
		Source: in.Source,
		Amount: *in.Amount,
		Date:   *in.Date,
	}
	if err := s.db.Create(income).Error; err != nil {
		return nil, err
	}
	return income, nil
}

func (s *IncomeService) List(userID uint) ([]models.Income, error) {
	var incomes []models.Income
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&incomes).Error
	return incomes, err
}

func (s *IncomeService) Delete(userID, incomeID uint) error {
	var income models.Income
	if err := s.db.First(&income, incomeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if income.UserID != userID {
		return ErrForbidden
	}
	return s.db.Delete(&income).Error
}
