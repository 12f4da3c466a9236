package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/reclaim/api-go/models"
)

// ItemService owns item records and their returned/active status.
type ItemService struct {
	DB *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{DB: db}
}

type CreateItemInput struct {
	Status      string
	Name        string
	Location    string
	Date        string
	Description string
	Contact     string
	ImageKey    string
}

type ListItemsInput struct {
	Section  string
	Query    string
	Page     int
	PageSize int
}

// Create validates and stores a new item for ownerID. Found items must
// carry an image so the poster documents what they picked up. Name and
// location are title-cased for display; matching stays case-insensitive.
func (s *ItemService) Create(ownerID uint, in CreateItemInput) (*models.Item, error) {
	if in.Status != models.ItemStatusLost && in.Status != models.ItemStatusFound {
		return nil, validationf("status must be %q or %q", models.ItemStatusLost, models.ItemStatusFound)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("item name is required")
	}
	if strings.TrimSpace(in.Location) == "" {
		return nil, validationf("location is required")
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, validationf("date must be in YYYY-MM-DD format")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, validationf("description is required")
	}
	if strings.TrimSpace(in.Contact) == "" {
		return nil, validationf("contact is required")
	}
	if in.Status == models.ItemStatusFound && in.ImageKey == "" {
		return nil, validationf("an image is required for found items")
	}

	title := cases.Title(language.English)
	item := models.Item{
		OwnerID:     ownerID,
		Name:        title.String(strings.TrimSpace(in.Name)),
		Status:      in.Status,
		Location:    title.String(strings.TrimSpace(in.Location)),
		Date:        in.Date,
		Description: in.Description,
		Contact:     in.Contact,
	}
	if in.ImageKey != "" {
		item.ImageKey = &in.ImageKey
	}

	if err := s.DB.Create(&item).Error; err != nil {
		return nil, dependency("create item", err)
	}
	return &item, nil
}

// Get returns the item or a NotFoundError.
func (s *ItemService) Get(id uint) (*models.Item, error) {
	var item models.Item
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "item"}
		}
		return nil, dependency("get item", err)
	}
	return &item, nil
}

// List returns one dashboard section, newest first. The active section
// holds open items, the previous section returned ones; the partition is
// total and exclusive. An optional query narrows by case-insensitive
// substring match on the name. Listing never mutates.
func (s *ItemService) List(in ListItemsInput) ([]models.ItemSummary, int64, error) {
	if in.Section == "" {
		in.Section = models.SectionActive
	}
	if in.Section != models.SectionActive && in.Section != models.SectionPrevious {
		return nil, 0, validationf("section must be %q or %q", models.SectionActive, models.SectionPrevious)
	}
	if in.Page < 1 {
		in.Page = 1
	}
	if in.PageSize < 1 || in.PageSize > 100 {
		in.PageSize = 20
	}

	q := s.DB.Model(&models.Item{}).Where("returned = ?", in.Section == models.SectionPrevious)
	if query := strings.TrimSpace(in.Query); query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, dependency("count items", err)
	}

	var items []models.Item
	offset := (in.Page - 1) * in.PageSize
	if err := q.Order("id DESC").Offset(offset).Limit(in.PageSize).Find(&items).Error; err != nil {
		return nil, 0, dependency("list items", err)
	}

	summaries := make([]models.ItemSummary, 0, len(items))
	for i := range items {
		summaries = append(summaries, items[i].Summary())
	}
	return summaries, total, nil
}

// MarkReturned closes the item. Only the owner may do this; marking an
// already-returned item again is a no-op. Once set, accepted requests on
// the item become read-only for chat (enforced by the chat service).
func (s *ItemService) MarkReturned(itemID, actingUserID uint) (*models.Item, error) {
	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, dependency("begin transaction", tx.Error)
	}

	var item models.Item
	if err := lockForUpdate(tx).First(&item, itemID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "item"}
		}
		return nil, dependency("get item", err)
	}

	if item.OwnerID != actingUserID {
		tx.Rollback()
		return nil, &AuthorizationError{Msg: "only the owner can mark an item as returned"}
	}

	if !item.Returned {
		if err := tx.Model(&item).Update("returned", true).Error; err != nil {
			tx.Rollback()
			return nil, dependency("mark item returned", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, dependency("commit transaction", err)
	}

	item.Returned = true
	return &item, nil
}
