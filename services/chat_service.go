package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/reclaim/api-go/models"
)

// ChatService owns the ordered message threads scoped to accepted claim
// requests. A thread opens when a request is accepted and freezes for
// writes once the item is returned; history stays readable.
type ChatService struct {
	DB *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{DB: db}
}

// ChatMessage is one thread entry with the sender's display name joined in.
type ChatMessage struct {
	models.Message
	SenderName string `json:"sender_name"`
}

// resolveThread loads the request and its item for a caller. Requests that
// are absent, pending or rejected all come back as the same NotFoundError:
// probing a request id must not reveal whether it exists or how the owner
// decided.
func resolveThread(tx *gorm.DB, requestID, callerID uint) (*models.ClaimRequest, *models.Item, error) {
	var req models.ClaimRequest
	if err := tx.First(&req, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, &NotFoundError{Entity: "chat"}
		}
		return nil, nil, dependency("get claim request", err)
	}
	if req.Status != models.RequestStatusAccepted {
		return nil, nil, &NotFoundError{Entity: "chat"}
	}

	var item models.Item
	if err := tx.First(&item, req.ItemID).Error; err != nil {
		return nil, nil, dependency("get item", err)
	}

	if !isParty(callerID, &req, &item) {
		return nil, nil, &AuthorizationError{Msg: "you are not a party to this chat"}
	}
	return &req, &item, nil
}

// Post appends a message to the thread. The item must not have been
// returned; the timestamp is server-assigned at minute resolution.
func (s *ChatService) Post(requestID, senderID uint, body string) (*models.Message, error) {
	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, dependency("begin transaction", tx.Error)
	}

	req, item, err := resolveThread(lockForUpdate(tx), requestID, senderID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if item.Returned {
		tx.Rollback()
		return nil, &ClosedError{Msg: "item already returned, chat is closed"}
	}

	body = strings.TrimSpace(body)
	if body == "" {
		tx.Rollback()
		return nil, validationf("message cannot be empty")
	}

	msg := models.Message{
		RequestID: req.ID,
		SenderID:  senderID,
		Body:      body,
		CreatedAt: time.Now().Truncate(time.Minute),
	}
	if err := tx.Create(&msg).Error; err != nil {
		tx.Rollback()
		return nil, dependency("create message", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, dependency("commit transaction", err)
	}
	return &msg, nil
}

// List returns the thread in creation order. Unlike Post it works on
// returned items too, so both parties can still read the history.
func (s *ChatService) List(requestID, callerID uint) ([]ChatMessage, error) {
	if _, _, err := resolveThread(s.DB, requestID, callerID); err != nil {
		return nil, err
	}

	var msgs []ChatMessage
	err := s.DB.Model(&models.Message{}).
		Select("messages.*, users.name AS sender_name").
		Joins("JOIN users ON users.id = messages.sender_id").
		Where("messages.request_id = ?", requestID).
		Order("messages.id ASC").
		Scan(&msgs).Error
	if err != nil {
		return nil, dependency("list messages", err)
	}
	if msgs == nil {
		msgs = []ChatMessage{}
	}
	return msgs, nil
}
