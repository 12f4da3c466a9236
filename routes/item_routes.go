package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/reclaim/api-go/controllers"
)

func SetupItemRoutes(protected *gin.RouterGroup, itemController *controllers.ItemController, claimController *controllers.ClaimController) {
	items := protected.Group("/items")
	{
		items.GET("", itemController.ListItems)
		items.POST("", itemController.CreateItem)
		items.GET("/:id", itemController.GetItem)
		items.POST("/:id/return", itemController.MarkReturned)
		items.POST("/:id/claims", claimController.SubmitClaim)
	}
}
