package controllers

import (
	"net/http"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/dashboard
func GetDashboardData(c *gin.Context) {
	svc := services.NewDashboardService(config.DB)
	data, err := svc.GetData(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching dashboard data"})
		return
	}
	c.JSON(http.StatusOK, data)
}
