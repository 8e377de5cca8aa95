package routes

import (
	"os"

	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const foodImageTempDir = "temp_food_uploads"

func SetupRouter() *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		corsCfg.AllowOrigins = []string{clientURL}
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = []string{"Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api/v1")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected auth routes
	authed := api.Group("/auth")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.GET("/getUser", controllers.GetUser)
		authed.POST("/upload-image", controllers.UploadProfileImage)
	}

	calories := api.Group("/calories")
	calories.Use(middlewares.AuthMiddleware())
	{
		calories.POST("", controllers.AddFoodLog)
		calories.GET("", controllers.GetFoodLogs)
		calories.DELETE("/:id", controllers.DeleteFoodLog)
		calories.POST("/detect", middlewares.FoodImageUpload(foodImageTempDir), controllers.DetectFoodWithImage)
		calories.GET("/summary/today", controllers.GetTodayCalorieSummary)
	}

	income := api.Group("/income")
	income.Use(middlewares.AuthMiddleware())
	{
		income.POST("/add", controllers.AddIncome)
		income.GET("/get", controllers.GetAllIncome)
		income.GET("/downloadexcel", controllers.DownloadIncomeExcel)
		income.DELETE("/:id", controllers.DeleteIncome)
	}

	expense := api.Group("/expense")
	expense.Use(middlewares.AuthMiddleware())
	{
		expense.POST("/add", controllers.AddExpense)
		expense.GET("/get", controllers.GetAllExpense)
		expense.GET("/downloadexcel", controllers.DownloadExpenseExcel)
		expense.DELETE("/:id", controllers.DeleteExpense)
	}

	dashboard := api.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("", controllers.GetDashboardData)
	}

	return r
}
