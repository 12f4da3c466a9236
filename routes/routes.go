package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/reclaim/api-go/controllers"
	"github.com/reclaim/api-go/middleware"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	itemController := controllers.NewItemController(db)
	claimController := controllers.NewClaimController(db)
	chatController := controllers.NewChatController(db)
	uploadController := controllers.NewUploadController()

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/auth/google", authController.GoogleLogin)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.POST("/refresh-token", authController.RefreshToken)
		protected.GET("/profile", authController.GetProfile)

		SetupItemRoutes(protected, itemController, claimController)
		SetupClaimRoutes(protected, claimController, chatController)
		SetupUploadRoutes(protected, uploadController)
	}
}
