package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Name          string         `gorm:"not null" json:"name"`
	Email         string         `gorm:"unique;not null" json:"email"`
	Password      *string        `gorm:"type:varchar(100)" json:"-"` // Don't expose password in JSON
	GoogleID      *string        `gorm:"uniqueIndex" json:"-"`
	Provider      string         `gorm:"default:'email'" json:"provider"`
	Items         []Item         `json:"items,omitempty" gorm:"foreignKey:OwnerID"`
	Requests      []ClaimRequest `json:"requests,omitempty" gorm:"foreignKey:RequesterID"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}
