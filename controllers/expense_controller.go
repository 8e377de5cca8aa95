package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/config"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/v1/expense/add
func AddExpense(c *gin.Context) {
	var in services.AddExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	svc := services.NewExpenseService(config.DB)
	expense, err := svc.Add(c.GetUint("userID"), in)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": vErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while adding expense"})
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// GET /api/v1/expense/get
func GetAllExpense(c *gin.Context) {
	svc := services.NewExpenseService(config.DB)
	expenses, err := svc.List(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching expenses"})
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// DELETE /api/v1/expense/:id
func DeleteExpense(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid expense ID format"})
		return
	}

	svc := services.NewExpenseService(config.DB)
	switch err := svc.Delete(c.GetUint("userID"), uint(id)); {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Expense not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "User not authorized to delete this expense"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while deleting expense"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
	}
}

// GET /api/v1/expense/downloadexcel
func DownloadExpenseExcel(c *gin.Context) {
	svc := services.NewExpenseService(config.DB)
	expenses, err := svc.List(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching expenses"})
		return
	}

	f := utils.ExpensesToExcel(expenses)
	c.Header("Content-Disposition", `attachment; filename="expense_details.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to write excel file"})
	}
}
