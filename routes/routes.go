package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Everything else requires a session
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		user := api.Group("/user")
		{
			user.GET("/profile", controllers.GetProfile)
			user.PUT("/profile", controllers.UpdateProfile)
			user.POST("/onboarding", controllers.CompleteOnboarding)
			user.GET("/health-report", controllers.GetHealthReport)
			user.GET("/bmi-scale", controllers.GetBMIScale)
			user.POST("/emergency-card/share", controllers.ShareEmergencyCard)
		}

		api.POST("/scan/:barcode", controllers.AnalyzeBarcode)
		api.POST("/assistant/ask", controllers.AskAssistant)

		diary := api.Group("/diary")
		{
			diary.GET("", controllers.ListSavedProducts)
			diary.POST("", controllers.SaveProduct)
			diary.DELETE("/:id", controllers.RemoveSavedProduct)
		}

		watch := api.Group("/watch")
		{
			watch.POST("/register", controllers.RegisterWatch)
			watch.POST("/sync", controllers.SyncWatch)
		}

		api.GET("/ws", controllers.RealtimeSocket)
	}

	return r
}
