package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reclaim/api-go/services"
)

// respondError translates the service error taxonomy into HTTP statuses.
// Every controller funnels service failures through here so the mapping
// stays in one place.
func respondError(c *gin.Context, err error) {
	var (
		validation   *services.ValidationError
		notFound     *services.NotFoundError
		authz        *services.AuthorizationError
		closed       *services.ClosedError
		invalidState *services.InvalidStateError
		dep          *services.DependencyError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error(), "success": false})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error(), "success": false})
	case errors.As(err, &authz):
		c.JSON(http.StatusForbidden, gin.H{"error": authz.Error(), "success": false})
	case errors.As(err, &closed):
		c.JSON(http.StatusConflict, gin.H{"error": closed.Error(), "success": false})
	case errors.As(err, &invalidState):
		c.JSON(http.StatusConflict, gin.H{"error": invalidState.Error(), "success": false})
	case errors.As(err, &dep):
		log.Printf("dependency failure: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "A backend dependency failed", "success": false})
	default:
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "success": false})
	}
}
