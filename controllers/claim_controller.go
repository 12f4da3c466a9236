package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/reclaim/api-go/services"
	"github.com/reclaim/api-go/utils"
)

type ClaimController struct {
	Claims *services.ClaimService
}

type SubmitClaimRequest struct {
	ClaimMessage string `json:"claimMessage" binding:"required"`
	ImageKey     string `json:"imageKey"`
}

func NewClaimController(db *gorm.DB) *ClaimController {
	return &ClaimController{Claims: services.NewClaimService(db)}
}

// SubmitClaim godoc
// @Summary Submit a claim request against an item
// @Description Files a pending claim; owners cannot claim their own items
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param claim body SubmitClaimRequest true "Claim request"
// @Success 201 {object} StandardResponse
// @Router /items/{id}/claims [post]
func (cc *ClaimController) SubmitClaim(c *gin.Context) {
	user := utils.GetUser(c)
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id", "success": false})
		return
	}

	var req SubmitClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	claim, err := cc.Claims.Submit(uint(itemID), user.UserID, req.ClaimMessage, req.ImageKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    claim,
		Message: "Claim request sent",
	})
}

// DecideClaim godoc
// @Summary Accept or reject a claim request
// @Description Owner-only; a decided request cannot be decided again
// @Tags claims
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} StandardResponse
// @Router /requests/{id}/accept [post]
func (cc *ClaimController) DecideClaim(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.GetUser(c)
		requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id", "success": false})
			return
		}

		claim, err := cc.Claims.Decide(uint(requestID), user.UserID, action)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, StandardResponse{
			Success: true,
			Data:    claim,
			Message: "Request " + claim.Status,
		})
	}
}

// Inbox godoc
// @Summary Unified claim inbox
// @Description Requests received on the caller's items and requests the caller sent, newest first
// @Tags claims
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /requests [get]
func (cc *ClaimController) Inbox(c *gin.Context) {
	user := utils.GetUser(c)

	entries, err := cc.Claims.Inbox(user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	if entries == nil {
		entries = []services.InboxEntry{}
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: entries})
}
