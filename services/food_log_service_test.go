package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open in-memory database")

	// A pooled second connection to :memory: would see an empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.User{}, &models.FoodLog{}, &models.Income{}, &models.Expense{})
	require.NoError(t, err, "AutoMigrate failed")

	return db
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateFoodLog(t *testing.T) {
	svc := NewFoodLogService(setupTestDB(t))

	t.Run("stores exact values with default macros", func(t *testing.T) {
		entry, err := svc.Create(1, CreateFoodLogInput{FoodName: "Banana", Calories: floatPtr(105)})
		require.NoError(t, err)
		assert.Equal(t, "Banana", entry.FoodName)
		assert.InDelta(t, 105, entry.Calories, 0.0001)
		assert.Zero(t, entry.Protein)
		assert.Zero(t, entry.Carbs)
		assert.Zero(t, entry.Fats)
		assert.Equal(t, models.MealSnack, entry.MealType)
		assert.False(t, entry.EatenAt.IsZero(), "EatenAt should default to creation time")

		logs, err := svc.List(1, "", "")
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, "Banana", logs[0].FoodName)
		assert.InDelta(t, 105, logs[0].Calories, 0.0001)
	})

	t.Run("rejects missing food name and calories", func(t *testing.T) {
		_, err := svc.Create(1, CreateFoodLogInput{MealType: models.MealLunch})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Food name and calories are required", vErr.Message)
	})

	t.Run("rejects missing calories even with food name", func(t *testing.T) {
		_, err := svc.Create(1, CreateFoodLogInput{FoodName: "Toast"})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("accepts explicit zero calories", func(t *testing.T) {
		entry, err := svc.Create(1, CreateFoodLogInput{FoodName: "Water", Calories: floatPtr(0)})
		require.NoError(t, err)
		assert.Zero(t, entry.Calories)
	})

	t.Run("rejects negative calories", func(t *testing.T) {
		_, err := svc.Create(1, CreateFoodLogInput{FoodName: "Ghost", Calories: floatPtr(-5)})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("rejects unknown meal type", func(t *testing.T) {
		_, err := svc.Create(1, CreateFoodLogInput{FoodName: "Pie", Calories: floatPtr(300), MealType: "Brunch"})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("keeps a valid meal type", func(t *testing.T) {
		entry, err := svc.Create(1, CreateFoodLogInput{FoodName: "Eggs", Calories: floatPtr(150), MealType: models.MealBreakfast})
		require.NoError(t, err)
		assert.Equal(t, models.MealBreakfast, entry.MealType)
	})
}

func TestListFoodLogsDateRange(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodLogService(db)

	eatenAt := func(ts time.Time) *time.Time { return &ts }
	day := time.Date(2024, 4, 10, 0, 0, 0, 0, time.Local)

	// One entry at the very start of the day, one at the very end, one the
	// day before and one the day after.
	for _, tc := range []struct {
		name string
		ts   time.Time
	}{
		{"StartOfDay", day},
		{"EndOfDay", time.Date(2024, 4, 10, 23, 59, 59, 0, time.Local)},
		{"DayBefore", day.Add(-time.Hour)},
		{"DayAfter", time.Date(2024, 4, 11, 0, 0, 1, 0, time.Local)},
	} {
		_, err := svc.Create(7, CreateFoodLogInput{FoodName: tc.name, Calories: floatPtr(100), EatenAt: eatenAt(tc.ts)})
		require.NoError(t, err)
	}

	t.Run("closed range keeps only entries within the day bounds", func(t *testing.T) {
		logs, err := svc.List(7, "2024-04-10", "2024-04-10")
		require.NoError(t, err)
		require.Len(t, logs, 2)
		// Sorted newest first.
		assert.Equal(t, "EndOfDay", logs[0].FoodName)
		assert.Equal(t, "StartOfDay", logs[1].FoodName)
	})

	t.Run("open-ended lower bound", func(t *testing.T) {
		logs, err := svc.List(7, "2024-04-10", "")
		require.NoError(t, err)
		assert.Len(t, logs, 3)
	})

	t.Run("open-ended upper bound", func(t *testing.T) {
		logs, err := svc.List(7, "", "2024-04-09")
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, "DayBefore", logs[0].FoodName)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		_, err := svc.List(7, "10-03-2024", "")
		assert.ErrorIs(t, err, ErrInvalidDate)

		_, err = svc.List(7, "", "not-a-date")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("other users see nothing", func(t *testing.T) {
		logs, err := svc.List(99, "", "")
		require.NoError(t, err)
		assert.Empty(t, logs)
	})
}

func TestDeleteFoodLog(t *testing.T) {
	svc := NewFoodLogService(setupTestDB(t))

	entry, err := svc.Create(1, CreateFoodLogInput{FoodName: "Soup", Calories: floatPtr(220)})
	require.NoError(t, err)

	t.Run("non-owner is forbidden", func(t *testing.T) {
		err := svc.Delete(2, entry.ID)
		assert.ErrorIs(t, err, ErrForbidden)

		logs, err := svc.List(1, "", "")
		require.NoError(t, err)
		assert.Len(t, logs, 1, "entry must survive a forbidden delete")
	})

	t.Run("owner deletes exactly once", func(t *testing.T) {
		require.NoError(t, svc.Delete(1, entry.ID))

		logs, err := svc.List(1, "", "")
		require.NoError(t, err)
		assert.Empty(t, logs)

		err = svc.Delete(1, entry.ID)
		assert.ErrorIs(t, err, ErrNotFound, "second delete must report not found")
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		err := svc.Delete(1, 424242)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTodayCalorieSummary(t *testing.T) {
	svc := NewFoodLogService(setupTestDB(t))

	t.Run("zero entries yield an all-zero summary", func(t *testing.T) {
		sum, err := svc.TodaySummary(5)
		require.NoError(t, err)
		assert.Zero(t, sum.TotalCalories)
		assert.Zero(t, sum.TotalProtein)
		assert.Zero(t, sum.TotalCarbs)
		assert.Zero(t, sum.TotalFats)
		assert.Zero(t, sum.LogCount)
	})

	t.Run("sums only today's entries", func(t *testing.T) {
		_, err := svc.Create(5, CreateFoodLogInput{FoodName: "Oats", Calories: floatPtr(300), Protein: 10, Carbs: 50, Fats: 6})
		require.NoError(t, err)
		_, err = svc.Create(5, CreateFoodLogInput{FoodName: "Apple", Calories: floatPtr(95)})
		require.NoError(t, err)

		yesterday := time.Now().AddDate(0, 0, -1)
		_, err = svc.Create(5, CreateFoodLogInput{FoodName: "Old", Calories: floatPtr(1000), EatenAt: &yesterday})
		require.NoError(t, err)

		// Another user's entry today must not leak in.
		_, err = svc.Create(6, CreateFoodLogInput{FoodName: "Theirs", Calories: floatPtr(500)})
		require.NoError(t, err)

		sum, err := svc.TodaySummary(5)
		require.NoError(t, err)
		assert.InDelta(t, 395, sum.TotalCalories, 0.0001)
		assert.InDelta(t, 10, sum.TotalProtein, 0.0001)
		assert.InDelta(t, 50, sum.TotalCarbs, 0.0001)
		assert.InDelta(t, 6, sum.TotalFats, 0.0001)
		assert.Equal(t, 2, sum.LogCount)
	})
}
