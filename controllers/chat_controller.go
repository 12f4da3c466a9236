package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/reclaim/api-go/services"
	"github.com/reclaim/api-go/utils"
)

type ChatController struct {
	Chat *services.ChatService
}

type PostMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

func NewChatController(db *gorm.DB) *ChatController {
	return &ChatController{Chat: services.NewChatService(db)}
}

// ListMessages godoc
// @Summary Read a claim chat thread
// @Description Returns the ordered thread; history stays readable after the item is returned
// @Tags chat
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} StandardResponse
// @Router /requests/{id}/messages [get]
func (cc *ChatController) ListMessages(c *gin.Context) {
	user := utils.GetUser(c)
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id", "success": false})
		return
	}

	msgs, err := cc.Chat.List(uint(requestID), user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: msgs})
}

// PostMessage godoc
// @Summary Post to a claim chat thread
// @Description Appends a message; fails once the item has been returned
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param message body PostMessageRequest true "Message body"
// @Success 201 {object} StandardResponse
// @Router /requests/{id}/messages [post]
func (cc *ChatController) PostMessage(c *gin.Context) {
	user := utils.GetUser(c)
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id", "success": false})
		return
	}

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	msg, err := cc.Chat.Post(uint(requestID), user.UserID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    msg,
		Message: "Message sent",
	})
}
