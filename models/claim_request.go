package models

import (
	"time"
)

// Claim request statuses. A request starts pending and moves exactly once
// to accepted or rejected; decided requests never flip back.
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

// Decisions an item owner can take on a pending request.
const (
	DecisionAccept = "accept"
	DecisionReject = "reject"
)

type ClaimRequest struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ItemID       uint      `gorm:"not null;index" json:"item_id"`
	Item         Item      `json:"-" gorm:"foreignKey:ItemID"`
	RequesterID  uint      `gorm:"not null;index" json:"requester_id"`
	Requester    User      `json:"-" gorm:"foreignKey:RequesterID"`
	ClaimMessage string    `gorm:"not null;type:text" json:"claim_message"`
	ImageKey     *string   `json:"image_key,omitempty"`
	Status       string    `gorm:"not null;default:'pending';type:varchar(10)" json:"status"`
}

// Decided reports whether the request has reached a terminal status.
func (r *ClaimRequest) Decided() bool {
	return r.Status == RequestStatusAccepted || r.Status == RequestStatusRejected
}
