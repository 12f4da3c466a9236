package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/reclaim/api-go/controllers"
)

func SetupUploadRoutes(protected *gin.RouterGroup, uploadController *controllers.UploadController) {
	upload := protected.Group("/uploads")
	{
		// Presigned PUT URL for clients that push straight to the blob store
		upload.POST("/presign", uploadController.GetPresignedURL)

		// Direct multipart upload, normalized server-side
		upload.POST("", uploadController.UploadImage)
	}
}
