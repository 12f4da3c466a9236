package services

import (
	"github.com/reclaim/api-go/models"
)

// Access predicates gating every endpoint. They are pure functions of the
// entities passed in: no database access, no side effects.

// CanViewFull reports whether userID may see the item's contact details and
// full description: the owner always, a requester only once their own
// request has been accepted. req is the caller's request on the item and
// may be nil.
func CanViewFull(userID uint, item *models.Item, req *models.ClaimRequest) bool {
	if userID == item.OwnerID {
		return true
	}
	if req == nil || req.ItemID != item.ID {
		return false
	}
	return req.RequesterID == userID && req.Status == models.RequestStatusAccepted
}

// CanDecide reports whether userID may accept or reject the request: only
// the owner of the request's target item.
func CanDecide(userID uint, req *models.ClaimRequest, item *models.Item) bool {
	return req.ItemID == item.ID && userID == item.OwnerID
}

// CanChat reports whether userID may post to the request's message thread:
// the request must be accepted, the item must not be returned, and the user
// must be one of the two parties.
func CanChat(userID uint, req *models.ClaimRequest, item *models.Item) bool {
	if req.ItemID != item.ID {
		return false
	}
	if req.Status != models.RequestStatusAccepted || item.Returned {
		return false
	}
	return userID == item.OwnerID || userID == req.RequesterID
}

// isParty reports whether userID is the item owner or the requester.
// Unlike CanChat it ignores request status and the returned flag, so the
// chat service can tell "not yours" apart from "closed".
func isParty(userID uint, req *models.ClaimRequest, item *models.Item) bool {
	return userID == item.OwnerID || userID == req.RequesterID
}
