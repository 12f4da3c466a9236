package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/reclaim/api-go/services"
	"github.com/reclaim/api-go/utils"
)

type ItemController struct {
	Items  *services.ItemService
	Claims *services.ClaimService
}

type CreateItemRequest struct {
	Status      string `json:"status" binding:"required,oneof=lost found"`
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Description string `json:"description" binding:"required"`
	Contact     string `json:"contact" binding:"required"`
	ImageKey    string `json:"imageKey"`
}

func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{
		Items:  services.NewItemService(db),
		Claims: services.NewClaimService(db),
	}
}

// ListItems godoc
// @Summary List items in a dashboard section
// @Description Returns active or previously returned items, optionally filtered by name
// @Tags items
// @Produce json
// @Param section query string false "Section: active or previous (default: active)"
// @Param q query string false "Case-insensitive substring match on name"
// @Success 200 {object} StandardResponse
// @Router /items [get]
func (ic *ItemController) ListItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	items, total, err := ic.Items.List(services.ListItemsInput{
		Section:  c.DefaultQuery("section", "active"),
		Query:    c.Query("q"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    items,
		Pagination: &PaginationMeta{
			CurrentPage: page,
			PageSize:    pageSize,
			TotalItems:  total,
			TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
		},
	})
}

// CreateItem godoc
// @Summary Post a lost or found item
// @Description Creates an item owned by the caller; found items require an image
// @Tags items
// @Accept json
// @Produce json
// @Param item body CreateItemRequest true "Item creation request"
// @Success 201 {object} StandardResponse
// @Router /items [post]
func (ic *ItemController) CreateItem(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	item, err := ic.Items.Create(user.UserID, services.CreateItemInput{
		Status:      req.Status,
		Name:        req.Name,
		Location:    req.Location,
		Date:        req.Date,
		Description: req.Description,
		Contact:     req.Contact,
		ImageKey:    req.ImageKey,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    item,
		Message: req.Status + " item posted successfully",
	})
}

// GetItem godoc
// @Summary View one item
// @Description Returns the item, the caller's own request on it, and whether full details are revealed
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} StandardResponse
// @Router /items/{id} [get]
func (ic *ItemController) GetItem(c *gin.Context) {
	user := utils.GetUser(c)
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id", "success": false})
		return
	}

	view, err := ic.Claims.UserFacingState(uint(itemID), user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: view})
}

// MarkReturned godoc
// @Summary Mark an item as returned
// @Description Owner-only; closes the item and freezes chat on its accepted requests
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} StandardResponse
// @Router /items/{id}/return [post]
func (ic *ItemController) MarkReturned(c *gin.Context) {
	user := utils.GetUser(c)
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id", "success": false})
		return
	}

	item, err := ic.Items.MarkReturned(uint(itemID), user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    item,
		Message: "Item marked as returned",
	})
}
