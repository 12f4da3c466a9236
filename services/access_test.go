package services

import (
	"testing"

	"github.com/reclaim/api-go/models"
)

func TestCanViewFull(t *testing.T) {
	item := &models.Item{ID: 1, OwnerID: 10}

	tests := []struct {
		name   string
		userID uint
		req    *models.ClaimRequest
		want   bool
	}{
		{"owner without request", 10, nil, true},
		{"owner with someone's pending request", 10, &models.ClaimRequest{ID: 1, ItemID: 1, RequesterID: 20, Status: models.RequestStatusPending}, true},
		{"stranger without request", 30, nil, false},
		{"requester with pending request", 20, &models.ClaimRequest{ID: 1, ItemID: 1, RequesterID: 20, Status: models.RequestStatusPending}, false},
		{"requester with rejected request", 20, &models.ClaimRequest{ID: 1, ItemID: 1, RequesterID: 20, Status: models.RequestStatusRejected}, false},
		{"requester with accepted request", 20, &models.ClaimRequest{ID: 1, ItemID: 1, RequesterID: 20, Status: models.RequestStatusAccepted}, true},
		{"accepted request for a different item", 20, &models.ClaimRequest{ID: 2, ItemID: 2, RequesterID: 20, Status: models.RequestStatusAccepted}, false},
		{"someone else's accepted request", 30, &models.ClaimRequest{ID: 1, ItemID: 1, RequesterID: 20, Status: models.RequestStatusAccepted}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanViewFull(tt.userID, item, tt.req); got != tt.want {
				t.Errorf("CanViewFull(%d) = %v, want %v", tt.userID, got, tt.want)
			}
		})
	}
}

func TestCanDecide(t *testing.T) {
	item := &models.Item{ID: 1, OwnerID: 10}
	req := &models.ClaimRequest{ID: 1, ItemID: 1, RequesterID: 20, Status: models.RequestStatusPending}

	if !CanDecide(10, req, item) {
		t.Error("owner should be able to decide")
	}
	if CanDecide(20, req, item) {
		t.Error("requester should not be able to decide")
	}
	if CanDecide(30, req, item) {
		t.Error("stranger should not be able to decide")
	}
}

func TestCanChat(t *testing.T) {
	tests := []struct {
		name     string
		userID   uint
		status   string
		returned bool
		want     bool
	}{
		{"owner on accepted open item", 10, models.RequestStatusAccepted, false, true},
		{"requester on accepted open item", 20, models.RequestStatusAccepted, false, true},
		{"stranger on accepted open item", 30, models.RequestStatusAccepted, false, false},
		{"owner on pending request", 10, models.RequestStatusPending, false, false},
		{"requester on rejected request", 20, models.RequestStatusRejected, false, false},
		{"owner once item is returned", 10, models.RequestStatusAccepted, true, false},
		{"requester once item is returned", 20, models.RequestStatusAccepted, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &models.Item{ID: 1, OwnerID: 10, Returned: tt.returned}
			req := &models.ClaimRequest{ID: 1, ItemID: 1, RequesterID: 20, Status: tt.status}
			if got := CanChat(tt.userID, req, item); got != tt.want {
				t.Errorf("CanChat(%d, %s, returned=%v) = %v, want %v",
					tt.userID, tt.status, tt.returned, got, tt.want)
			}
		})
	}
}
