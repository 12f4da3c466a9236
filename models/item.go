package models

import (
	"time"
)

// Item status tags. Set once at creation, never updated afterwards.
const (
	ItemStatusLost  = "lost"
	ItemStatusFound = "found"
)

// Dashboard sections: active items are still open, previous items have
// been marked returned.
const (
	SectionActive   = "active"
	SectionPrevious = "previous"
)

type Item struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Owner       User      `json:"-" gorm:"foreignKey:OwnerID"`
	Name        string    `gorm:"not null" json:"name"`
	Status      string    `gorm:"not null;type:varchar(10)" json:"status"` // "lost" or "found"
	Location    string    `gorm:"not null" json:"location"`
	Date        string    `gorm:"not null;type:varchar(10)" json:"date"` // YYYY-MM-DD
	Description string    `gorm:"not null;type:text" json:"description"`
	Contact     string    `gorm:"not null" json:"contact,omitempty"`
	ImageKey    *string   `json:"image_key,omitempty"`
	Returned    bool      `gorm:"not null;default:false" json:"returned"`
}

// Summary is the listing shape: no contact details, no description.
// Full item data stays behind the reveal rules in the claim service.
type ItemSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Location string `json:"location"`
	Date     string `json:"date"`
	ImageKey string `json:"image_key,omitempty"`
	Returned bool   `json:"returned"`
}

func (i *Item) Summary() ItemSummary {
	s := ItemSummary{
		ID:       i.ID,
		Name:     i.Name,
		Status:   i.Status,
		Location: i.Location,
		Date:     i.Date,
		Returned: i.Returned,
	}
	if i.ImageKey != nil {
		s.ImageKey = *i.ImageKey
	}
	return s
}
