package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// POST /api/v1/calories
func AddFoodLog(c *gin.Context) {
	var in services.CreateFoodLogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	svc := services.NewFoodLogService(config.DB)
	entry, err := svc.Create(c.GetUint("userID"), in)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": vErr.Message})
			return
		}
		log.Printf("Error adding food log: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while adding food log"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /api/v1/calories?startDate=&endDate=
func GetFoodLogs(c *gin.Context) {
	svc := services.NewFoodLogService(config.DB)
	logs, err := svc.List(c.GetUint("userID"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format provided for filtering."})
			return
		}
		log.Printf("Error fetching food logs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching food logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// DELETE /api/v1/calories/:id
func DeleteFoodLog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid food log ID format"})
		return
	}

	svc := services.NewFoodLogService(config.DB)
	switch err := svc.Delete(c.GetUint("userID"), uint(id)); {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Food log not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "User not authorized to delete this log"})
	case err != nil:
		log.Printf("Error deleting food log: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while deleting food log"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Food log deleted successfully"})
	}
}

// POST /api/v1/calories/detect
// The upload middleware has already stored the multipart image at
// "foodImagePath"; the pipeline owns deleting it.
func DetectFoodWithImage(c *gin.Context) {
	rec := services.NewSpoonacularService()
	if !rec.Configured() {
		log.Println("Spoonacular API key is missing.")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server configuration error: Missing API key."})
		return
	}

	imagePath := c.GetString("foodImagePath")
	if imagePath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No image file uploaded. Please upload an image."})
		return
	}

	host, err := services.NewCloudinaryService()
	if err != nil {
		log.Printf("Cloudinary init failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server configuration error: image host unavailable."})
		return
	}

	svc := services.NewDetectionService(config.DB, host, rec)
	entry, err := svc.DetectAndLog(c.Request.Context(), c.GetUint("userID"), imagePath)
	if err != nil {
		respondDetectionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// respondDetectionError maps each pipeline failure domain to its status
// and stable message, keeping the upstream detail as auxiliary context.
func respondDetectionError(c *gin.Context, err error) {
	var hostErr *services.ImageHostError
	var recErr *services.RecognitionError
	var unrecErr *services.UnrecognizedFoodError
	var vErr *services.ValidationError

	switch {
	case errors.As(err, &hostErr):
		log.Printf("Cloudinary upload failed: %v", hostErr.Err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to upload image to Cloudinary.",
			"details": hostErr.Err.Error(),
		})
	case errors.As(err, &recErr):
		log.Printf("Spoonacular API request failed: %v", recErr.Err)
		status := recErr.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{
			"message": "Failed to analyze image with Spoonacular.",
			"details": recErr.Err.Error(),
		})
	case errors.As(err, &unrecErr):
		if unrecErr.MissingEssentials {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Spoonacular API did not return essential food name or calorie data."})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"message": "Could not extract food data from Spoonacular response. Unexpected format."})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": vErr.Message})
	default:
		log.Printf("Error in DetectFoodWithImage: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while detecting food from image."})
	}
}

// GET /api/v1/calories/summary/today
func GetTodayCalorieSummary(c *gin.Context) {
	svc := services.NewFoodLogService(config.DB)
	summary, err := svc.TodaySummary(c.GetUint("userID"))
	if err != nil {
		log.Printf("Error fetching today's calorie summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching today's calorie summary."})
		return
	}
	c.JSON(http.StatusOK, summary)
}
