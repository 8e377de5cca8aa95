package services

import (
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type ExpenseService struct {
	db *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

type AddExpenseInput struct {
	Icon     string     `json:"icon"`
	Category string     `json:"category"`
	Amount   *float64   `json:"amount"`
	Date     *time.Time `json:"date"`
}

func (s *ExpenseService) Add(userID uint, in AddExpenseInput) (*models.Expense, error) {
	if in.Category == "" || in.Amount == nil || in.Date == nil {
		return nil, &ValidationError{Message: "All fields are required"}
	}
	expense := &models.Expense{
		UserID:   userID,
		Icon:     in.Icon,
		Category: in.Category,
		Amount:   *in.Amount,
		Date:     *in.Date,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) List(userID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&expenses).Error
	return expenses, err
}

func (s *ExpenseService) Delete(userID, expenseID uint) error {
	var expense models.Expense
	if err := s.db.First(&expense, expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if expense.UserID != userID {
		return ErrForbidden
	}
	return s.db.Delete(&expense).Error
}
