package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ghdehrl12345/foodLens/controllers"
	"github.com/ghdehrl12345/foodLens/middlewares"
	"github.com/ghdehrl12345/foodLens/services"
)

func SetupRouter(ledger *services.LedgerService, profile *services.ProfileService, analyzer services.Analyzer, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(cors.Default())

	analyzeCtl := controllers.NewAnalyzeController(analyzer, log)
	mealCtl := controllers.NewMealController(ledger, log)
	summaryCtl := controllers.NewSummaryController(ledger, profile, log)
	profileCtl := controllers.NewProfileController(profile, log)

	api := r.Group("/api")
	{
		api.POST("/analyze", analyzeCtl.Analyze)
		api.POST("/meals", mealCtl.LogMeal)
		api.GET("/meals", mealCtl.ListMeals)
		api.GET("/summary", summaryCtl.GetSummary)
		api.GET("/profile", profileCtl.GetProfile)
		api.PUT("/profile", profileCtl.UpdateProfile)
		api.POST("/images", controllers.UploadImage)
	}

	return r
}
