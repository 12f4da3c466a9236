package models

import (
	"time"
)

type Message struct {
	ID        uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestID uint         `gorm:"not null;index" json:"request_id"`
	Request   ClaimRequest `json:"-" gorm:"foreignKey:RequestID"`
	SenderID  uint         `gorm:"not null" json:"sender_id"`
	Sender    User         `json:"-" gorm:"foreignKey:SenderID"`
	Body      string       `gorm:"not null;type:text" json:"body"`
	CreatedAt time.Time    `json:"created_at"`
}
