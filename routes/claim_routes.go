package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/reclaim/api-go/controllers"
	"github.com/reclaim/api-go/models"
)

func SetupClaimRoutes(protected *gin.RouterGroup, claimController *controllers.ClaimController, chatController *controllers.ChatController) {
	requests := protected.Group("/requests")
	{
		// Unified inbox: sent and received requests
		requests.GET("", claimController.Inbox)

		requests.POST("/:id/accept", claimController.DecideClaim(models.DecisionAccept))
		requests.POST("/:id/reject", claimController.DecideClaim(models.DecisionReject))

		// Chat threads, one per accepted request
		requests.GET("/:id/messages", chatController.ListMessages)
		requests.POST("/:id/messages", chatController.PostMessage)
	}
}
