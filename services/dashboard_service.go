package services

import (
	"sort"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Transaction is one income or expense row flattened for the dashboard
// feed; Type is "income" or "expense" and Label is the source/category.
type Transaction struct {
	ID     uint      `json:"id"`
	Type   string    `json:"type"`
	Icon   string    `json:"icon"`
	Label  string    `json:"label"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

type IncomeWindow struct {
	Total        float64         `json:"total"`
	Transactions []models.Income `json:"transactions"`
}

type ExpenseWindow struct {
	Total        float64          `json:"total"`
	Transactions []models.Expense `json:"transactions"`
}

type DashboardData struct {
	TotalBalance       float64       `json:"totalBalance"`
	TotalIncome        float64       `json:"totalIncome"`
	TotalExpense       float64       `json:"totalExpense"`
	Last60DaysIncome   IncomeWindow  `json:"last60DaysIncome"`
	Last30DaysExpenses ExpenseWindow `json:"last30DaysExpenses"`
	RecentTransactions []Transaction `json:"recentTransactions"`
}

func (s *DashboardService) GetData(userID uint) (*DashboardData, error) {
	data := &DashboardData{}

	err := s.db.Model(&models.Income{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalIncome).Error
	if err != nil {
		return nil, err
	}
	err = s.db.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalExpense).Error
	if err != nil {
		return nil, err
	}
	data.TotalBalance = data.TotalIncome - data.TotalExpense

	now := time.Now()
	err = s.db.
		Where("user_id = ? AND date >= ?", userID, now.AddDate(0, 0, -60)).
		Order("date DESC").
		Find(&data.Last60DaysIncome.Transactions).Error
	if err != nil {
		return nil, err
	}
	for _, in := range data.Last60DaysIncome.Transactions {
		data.Last60DaysIncome.Total += in.Amount
	}

	err = s.db.
		Where("user_id = ? AND date >= ?", userID, now.AddDate(0, 0, -30)).
		Order("date DESC").
		Find(&data.Last30DaysExpenses.Transactions).Error
	if err != nil {
		return nil, err
	}
	for _, ex := range data.Last30DaysExpenses.Transactions {
		data.Last30DaysExpenses.Total += ex.Amount
	}

	// Five most recent of each kind, merged newest first.
	var incomes []models.Income
	if err := s.db.Where("user_id = ?", userID).Order("date DESC").Limit(5).Find(&incomes).Error; err != nil {
		return nil, err
	}
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Order("date DESC").Limit(5).Find(&expenses).Error; err != nil {
		return nil, err
	}

	recent := make([]Transaction, 0, len(incomes)+len(expenses))
	for _, in := range incomes {
		recent = append(recent, Transaction{
			ID: in.ID, Type: "income", Icon: in.Icon, Label: in.Source, Amount: in.Amount, Date: in.Date,
		})
	}
	for _, ex := range expenses {
		recent = append(recent, Transaction{
			ID: ex.ID, Type: "expense", Icon: ex.Icon, Label: ex.Category, Amount: ex.Amount, Date: ex.Date,
		})
	}
	sort.Slice(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })
	data.RecentTransactions = recent

	return data, nil
}
