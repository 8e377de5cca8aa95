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

// POST /api/v1/income/add
func AddIncome(c *gin.Context) {
	var in services.AddIncomeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	svc := services.NewIncomeService(config.DB)
	income, err := svc.Add(c.GetUint("userID"), in)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": vErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while adding income"})
		return
	}
	c.JSON(http.StatusCreated, income)
}

// GET /api/v1/income/get
func GetAllIncome(c *gin.Context) {
	svc := services.NewIncomeService(config.DB)
	incomes, err := svc.List(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching income"})
		return
	}
	c.JSON(http.StatusOK, incomes)
}

// DELETE /api/v1/income/:id
func DeleteIncome(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid income ID format"})
		return
	}

	svc := services.NewIncomeService(config.DB)
	switch err := svc.Delete(c.GetUint("userID"), uint(id)); {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Income not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "User not authorized to delete this income"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while deleting income"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Income deleted successfully"})
	}
}

// GET /api/v1/income/downloadexcel
func DownloadIncomeExcel(c *gin.Context) {
	svc := services.NewIncomeService(config.DB)
	incomes, err := svc.List(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching income"})
		return
	}

	f := utils.IncomesToExcel(incomes)
	c.Header("Content-Disposition", `attachment; filename="income_details.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to write excel file"})
	}
}
