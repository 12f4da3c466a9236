package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/reclaim/api-go/models"
)

// ClaimService owns claim requests and their pending/accepted/rejected
// lifecycle.
type ClaimService struct {
	DB *gorm.DB
}

func NewClaimService(db *gorm.DB) *ClaimService {
	return &ClaimService{DB: db}
}

// InboxEntry is one row of a user's unified inbox: requests they received
// on their own items and requests they sent on other people's.
type InboxEntry struct {
	models.ClaimRequest
	ItemName     string `json:"item_name"`
	ItemReturned bool   `json:"item_returned"`
	OwnerID      uint   `json:"owner_id"`
	Role         string `json:"role"` // "received" or "sent"
	ChatOpen     bool   `json:"chat_open"`
}

// ItemView is the caller-specific view of one item: the item itself, the
// caller's own latest request on it if any, and whether full details
// (contact string, description) are revealed. Contact details are exposed
// only to the owner and to an accepted requester.
type ItemView struct {
	Item       models.Item          `json:"item"`
	MyRequest  *models.ClaimRequest `json:"my_request,omitempty"`
	RevealFull bool                 `json:"reveal_full"`
	ChatOpen   bool                 `json:"chat_open"`
}

// Submit files a new claim request against an item. Owners cannot claim
// their own items, and returned items accept no further claims.
func (s *ClaimService) Submit(itemID, requesterID uint, claimMessage, imageKey string) (*models.ClaimRequest, error) {
	claimMessage = strings.TrimSpace(claimMessage)
	if claimMessage == "" {
		return nil, validationf("claim message cannot be empty")
	}

	var item models.Item
	if err := s.DB.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "item"}
		}
		return nil, dependency("get item", err)
	}

	if item.OwnerID == requesterID {
		return nil, validationf("you cannot claim your own item")
	}
	if item.Returned {
		return nil, &ClosedError{Msg: "item has already been returned"}
	}

	req := models.ClaimRequest{
		ItemID:       itemID,
		RequesterID:  requesterID,
		ClaimMessage: claimMessage,
		Status:       models.RequestStatusPending,
	}
	if imageKey != "" {
		req.ImageKey = &imageKey
	}

	if err := s.DB.Create(&req).Error; err != nil {
		return nil, dependency("create claim request", err)
	}
	return &req, nil
}

// Decide moves a pending request to accepted or rejected. Only the owner
// of the target item may decide, and a decided request stays decided:
// re-invoking on a terminal request is an invalid state, not a flip.
func (s *ClaimService) Decide(requestID, actingUserID uint, decision string) (*models.ClaimRequest, error) {
	var newStatus string
	switch decision {
	case models.DecisionAccept:
		newStatus = models.RequestStatusAccepted
	case models.DecisionReject:
		newStatus = models.RequestStatusRejected
	default:
		return nil, validationf("decision must be %q or %q", models.DecisionAccept, models.DecisionReject)
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, dependency("begin transaction", tx.Error)
	}

	var req models.ClaimRequest
	if err := lockForUpdate(tx).First(&req, requestID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "request"}
		}
		return nil, dependency("get claim request", err)
	}

	var item models.Item
	if err := tx.First(&item, req.ItemID).Error; err != nil {
		tx.Rollback()
		return nil, dependency("get item", err)
	}

	if !CanDecide(actingUserID, &req, &item) {
		tx.Rollback()
		return nil, &AuthorizationError{Msg: "only the item owner can decide a claim request"}
	}

	if req.Decided() {
		tx.Rollback()
		return nil, &InvalidStateError{Msg: "request has already been " + req.Status}
	}

	// A returned item is terminal: stale pending requests can still be
	// rejected, but never accepted.
	if item.Returned && newStatus == models.RequestStatusAccepted {
		tx.Rollback()
		return nil, &ClosedError{Msg: "item has already been returned"}
	}

	// Guarded update: only a still-pending row transitions, so two racing
	// decisions cannot both win.
	res := tx.Model(&models.ClaimRequest{}).
		Where("id = ? AND status = ?", requestID, models.RequestStatusPending).
		Update("status", newStatus)
	if res.Error != nil {
		tx.Rollback()
		return nil, dependency("update claim request", res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, &InvalidStateError{Msg: "request has already been decided"}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, dependency("commit transaction", err)
	}

	req.Status = newStatus
	return &req, nil
}

// Inbox returns every request the user is a party to, newest first, with
// the role tag "received" (user owns the item) or "sent" (user filed the
// request).
func (s *ClaimService) Inbox(userID uint) ([]InboxEntry, error) {
	var entries []InboxEntry
	err := s.DB.Model(&models.ClaimRequest{}).
		Select("claim_requests.*, items.name AS item_name, items.returned AS item_returned, items.owner_id AS owner_id").
		Joins("JOIN items ON items.id = claim_requests.item_id").
		Where("items.owner_id = ? OR claim_requests.requester_id = ?", userID, userID).
		Order("claim_requests.id DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, dependency("list inbox", err)
	}

	for i := range entries {
		e := &entries[i]
		if e.OwnerID == userID {
			e.Role = "received"
		} else {
			e.Role = "sent"
		}
		item := models.Item{ID: e.ItemID, OwnerID: e.OwnerID, Returned: e.ItemReturned}
		e.ChatOpen = CanChat(userID, &e.ClaimRequest, &item)
	}
	return entries, nil
}

// UserFacingState resolves the item together with the caller's own request
// on it, preferring an accepted request over a later pending one.
// RevealFull drives whether contact details are exposed;
// callers without an accepted request only get the public summary fields.
func (s *ClaimService) UserFacingState(itemID, userID uint) (*ItemView, error) {
	var item models.Item
	if err := s.DB.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "item"}
		}
		return nil, dependency("get item", err)
	}

	// An accepted request wins over any later pending one: acceptance is
	// what grants the reveal, and filing again must not revoke it.
	var myReq *models.ClaimRequest
	var req models.ClaimRequest
	err := s.DB.Where("item_id = ? AND requester_id = ? AND status = ?", itemID, userID, models.RequestStatusAccepted).
		Order("id DESC").First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.DB.Where("item_id = ? AND requester_id = ?", itemID, userID).
			Order("id DESC").First(&req).Error
	}
	switch {
	case err == nil:
		myReq = &req
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No request from this caller.
	default:
		return nil, dependency("get claim request", err)
	}

	view := &ItemView{
		Item:       item,
		MyRequest:  myReq,
		RevealFull: CanViewFull(userID, &item, myReq),
	}
	if myReq != nil {
		view.ChatOpen = CanChat(userID, myReq, &item)
	}
	if !view.RevealFull {
		// Hide the owner's contact string from strangers and
		// not-yet-accepted requesters.
		view.Item.Contact = ""
	}
	return view, nil
}
