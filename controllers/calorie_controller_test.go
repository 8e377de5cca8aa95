package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupCalorieRouter wires the calorie handlers behind a stub auth
// middleware that injects userID, against a fresh in-memory database.
func setupCalorieRouter(t *testing.T, userID uint) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.FoodLog{}))
	config.DB = db

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", userID) })
	r.POST("/api/v1/calories", AddFoodLog)
	r.GET("/api/v1/calories", GetFoodLogs)
	r.DELETE("/api/v1/calories/:id", DeleteFoodLog)
	r.GET("/api/v1/calories/summary/today", GetTodayCalorieSummary)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddFoodLogEndpoint(t *testing.T) {
	r := setupCalorieRouter(t, 1)

	t.Run("creates a log", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/calories", gin.H{"foodName": "Banana", "calories": 105})
		require.Equal(t, http.StatusCreated, w.Code)

		var body models.FoodLog
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Banana", body.FoodName)
		assert.InDelta(t, 105, body.Calories, 0.0001)
		assert.Equal(t, models.MealSnack, body.MealType)
		assert.NotZero(t, body.ID)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/calories", gin.H{"mealType": "Lunch"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Food name and calories are required")
	})

	t.Run("rejects unknown meal type", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/calories", gin.H{"foodName": "Pie", "calories": 300, "mealType": "Brunch"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetFoodLogsEndpoint(t *testing.T) {
	r := setupCalorieRouter(t, 1)

	for _, name := range []string{"Eggs", "Toast"} {
		w := doJSON(t, r, http.MethodPost, "/api/v1/calories", gin.H{"foodName": name, "calories": 100})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("lists the caller's logs", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/calories", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var logs []models.FoodLog
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
		assert.Len(t, logs, 2)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/calories?startDate=01-31-2024", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid date format provided for filtering.")
	})
}

func TestDeleteFoodLogEndpoint(t *testing.T) {
	r := setupCalorieRouter(t, 1)

	w := doJSON(t, r, http.MethodPost, "/api/v1/calories", gin.H{"foodName": "Soup", "calories": 220})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.FoodLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	t.Run("another user's delete is forbidden", func(t *testing.T) {
		other := setupOtherUserRouter(t, 2)
		w := doJSON(t, other, http.MethodDelete, fmt.Sprintf("/api/v1/calories/%d", created.ID), nil)
		require.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "User not authorized to delete this log")
	})

	t.Run("owner delete succeeds once", func(t *testing.T) {
		path := fmt.Sprintf("/api/v1/calories/%d", created.ID)

		w := doJSON(t, r, http.MethodDelete, path, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Food log deleted successfully")

		w = doJSON(t, r, http.MethodDelete, path, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Food log not found")
	})

	t.Run("garbage id is a bad request", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/api/v1/calories/not-a-number", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// setupOtherUserRouter reuses the already-initialized config.DB so two
// identities see the same data.
func setupOtherUserRouter(t *testing.T, userID uint) *gin.Engine {
	t.Helper()
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", userID) })
	r.DELETE("/api/v1/calories/:id", DeleteFoodLog)
	return r
}

func TestTodaySummaryEndpoint(t *testing.T) {
	r := setupCalorieRouter(t, 1)

	t.Run("zeros before any log", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/calories/summary/today", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"totalCalories":0,"totalProtein":0,"totalCarbs":0,"totalFats":0,"logCount":0}`, w.Body.String())
	})

	t.Run("sums today's entries", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/calories", gin.H{"foodName": "Oats", "calories": 300, "protein": 10})
		require.Equal(t, http.StatusCreated, w.Code)
		w = doJSON(t, r, http.MethodPost, "/api/v1/calories", gin.H{"foodName": "Apple", "calories": 95})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, r, http.MethodGet, "/api/v1/calories/summary/today", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var sum struct {
			TotalCalories float64 `json:"totalCalories"`
			TotalProtein  float64 `json:"totalProtein"`
			LogCount      int     `json:"logCount"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
		assert.InDelta(t, 395, sum.TotalCalories, 0.0001)
		assert.InDelta(t, 10, sum.TotalProtein, 0.0001)
		assert.Equal(t, 2, sum.LogCount)
	})
}
