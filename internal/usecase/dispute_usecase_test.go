package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	disputedto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/dispute"
)

func TestOpenDispute_ForcesItemIntoIssue(t *testing.T) {
	itemRepo := newStubItemRepo(&domain.OrderItem{
		ID:                "item-1",
		SellerID:          "seller-1",
		BuyerID:           "buyer-1",
		FulfillmentStatus: domain.FulfillmentDelivered,
	})
	disputeRepo := newStubDisputeRepo()
	notifications := &recordingNotifications{}
	uc := NewDefaultDisputeUsecase(disputeRepo, itemRepo, newStubUserRepo(), notifications, nil, nil)

	dispute, err := uc.OpenDispute(context.Background(), &disputedto.OpenDisputeInput{
		OrderItemID: "item-1",
		BuyerID:     "buyer-1",
		Reason:      string(domain.ReasonDamaged),
		Description: "screen cracked",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DisputeOpen, dispute.Status)
	assert.Equal(t, domain.ReasonDamaged, dispute.Reason)
	assert.NotEmpty(t, dispute.ID)

	item, _ := itemRepo.GetOrderItemByID("item-1")
	assert.Equal(t, domain.FulfillmentIssue, item.FulfillmentStatus)

	// продавец получает уведомление об открытии
	require.Len(t, notifications.created, 1)
	assert.Equal(t, "seller-1", notifications.created[0].UserID)
	assert.Equal(t, domain.NotificationDisputeOpened, notifications.created[0].Type)
}

func TestOpenDispute_NotBuyer(t *testing.T) {
	itemRepo := newStubItemRepo(&domain.OrderItem{
		ID:                "item-1",
		SellerID:          "seller-1",
		BuyerID:           "buyer-1",
		FulfillmentStatus: domain.FulfillmentDelivered,
	})
	disputeRepo := newStubDisputeRepo()
	uc := NewDefaultDisputeUsecase(disputeRepo, itemRepo, newStubUserRepo(), &recordingNotifications{}, nil, nil)

	_, err := uc.OpenDispute(context.Background(), &disputedto.OpenDisputeInput{
		OrderItemID: "item-1",
		BuyerID:     "someone-else",
		Reason:      string(domain.ReasonDamaged),
	})
	assert.ErrorIs(t, err, domain.ErrNotOrderBuyer)

	item, _ := itemRepo.GetOrderItemByID("item-1")
	assert.Equal(t, domain.FulfillmentDelivered, item.FulfillmentStatus)
	assert.Empty(t, disputeRepo.disputes)
}

func TestOpenDispute_InvalidReason(t *testing.T) {
	itemRepo := newStubItemRepo(&domain.OrderItem{
		ID:       "item-1",
		SellerID: "seller-1",
		BuyerID:  "buyer-1",
	})
	uc := NewDefaultDisputeUsecase(newStubDisputeRepo(), itemRepo, newStubUserRepo(), &recordingNotifications{}, nil, nil)

	_, err := uc.OpenDispute(context.Background(), &disputedto.OpenDisputeInput{
		OrderItemID: "item-1",
		BuyerID:     "buyer-1",
		Reason:      "BAD_VIBES",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReason)
}

func TestResolveDispute_StatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		resolution domain.DisputeStatus
		wantItem   domain.FulfillmentStatus
	}{
		{"redelivered", domain.DisputeRedelivered, domain.FulfillmentDelivered},
		{"rejected", domain.DisputeRejected, domain.FulfillmentDelivered},
		{"buyer compensated", domain.DisputeBuyerCompensated, domain.FulfillmentIssue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			itemRepo := newStubItemRepo(&domain.OrderItem{
				ID:                "item-1",
				SellerID:          "seller-1",
				BuyerID:           "buyer-1",
				FulfillmentStatus: domain.FulfillmentIssue,
			})
			disputeRepo := newStubDisputeRepo(&domain.Dispute{
				ID:          "dispute-1",
				OrderItemID: "item-1",
				BuyerID:     "buyer-1",
				Status:      domain.DisputeOpen,
			})
			notifications := &recordingNotifications{}
			uc := NewDefaultDisputeUsecase(disputeRepo, itemRepo, newStubUserRepo(), notifications, nil, nil)

			dispute, err := uc.ResolveDispute(context.Background(), &disputedto.ResolveDisputeInput{
				DisputeID:      "dispute-1",
				ActorID:        "seller-1",
				Status:         string(tc.resolution),
				ResolutionNote: "handled",
			})
			require.NoError(t, err)

			assert.Equal(t, tc.resolution, dispute.Status)
			assert.Equal(t, "seller-1", dispute.ResolvedByID)
			require.NotNil(t, dispute.ResolvedAt)

			item, _ := itemRepo.GetOrderItemByID("item-1")
			assert.Equal(t, tc.wantItem, item.FulfillmentStatus)

			// покупатель получает уведомление об исходе
			require.Len(t, notifications.created, 1)
			assert.Equal(t, "buyer-1", notifications.created[0].UserID)
			assert.Equal(t, domain.NotificationDisputeResolved, notifications.created[0].Type)
		})
	}
}

func TestResolveDispute_AdminCanResolve(t *testing.T) {
	itemRepo := newStubItemRepo(&domain.OrderItem{
		ID:       "item-1",
		SellerID: "seller-1",
		BuyerID:  "buyer-1",
	})
	disputeRepo := newStubDisputeRepo(&domain.Dispute{
		ID:          "dispute-1",
		OrderItemID: "item-1",
		BuyerID:     "buyer-1",
		Status:      domain.DisputeOpen,
	})
	userRepo := newStubUserRepo(&domain.User{ID: "admin-1", Role: domain.RoleAdmin})
	uc := NewDefaultDisputeUsecase(disputeRepo, itemRepo, userRepo, &recordingNotifications{}, nil, nil)

	dispute, err := uc.ResolveDispute(context.Background(), &disputedto.ResolveDisputeInput{
		DisputeID: "dispute-1",
		ActorID:   "admin-1",
		Status:    string(domain.DisputeBuyerCompensated),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DisputeBuyerCompensated, dispute.Status)
	assert.Equal(t, "admin-1", dispute.ResolvedByID)
}

func TestResolveDispute_RandomBuyerForbidden(t *testing.T) {
	itemRepo := newStubItemRepo(&domain.OrderItem{
		ID:       "item-1",
		SellerID: "seller-1",
		BuyerID:  "buyer-1",
	})
	disputeRepo := newStubDisputeRepo(&domain.Dispute{
		ID:          "dispute-1",
		OrderItemID: "item-1",
		BuyerID:     "buyer-1",
		Status:      domain.DisputeOpen,
	})
	userRepo := newStubUserRepo(&domain.User{ID: "buyer-1", Role: domain.RoleBuyer})
	uc := NewDefaultDisputeUsecase(disputeRepo, itemRepo, userRepo, &recordingNotifications{}, nil, nil)

	_, err := uc.ResolveDispute(context.Background(), &disputedto.ResolveDisputeInput{
		DisputeID: "dispute-1",
		ActorID:   "buyer-1",
		Status:    string(domain.DisputeRejected),
	})
	assert.ErrorIs(t, err, domain.ErrNotSellerOrAdmin)

	stored, _ := disputeRepo.GetDisputeByID("dispute-1")
	assert.Equal(t, domain.DisputeOpen, stored.Status)
}

func TestResolveDispute_InvalidStatus(t *testing.T) {
	itemRepo := newStubItemRepo(&domain.OrderItem{
		ID:       "item-1",
		SellerID: "seller-1",
		BuyerID:  "buyer-1",
	})
	disputeRepo := newStubDisputeRepo(&domain.Dispute{
		ID:          "dispute-1",
		OrderItemID: "item-1",
		BuyerID:     "buyer-1",
		Status:      domain.DisputeOpen,
	})
	uc := NewDefaultDisputeUsecase(disputeRepo, itemRepo, newStubUserRepo(), &recordingNotifications{}, nil, nil)

	// SELLER_RESPONDED не является терминальным исходом
	_, err := uc.ResolveDispute(context.Background(), &disputedto.ResolveDisputeInput{
		DisputeID: "dispute-1",
		ActorID:   "seller-1",
		Status:    string(domain.DisputeSellerResponded),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDisputeStatus)
}

func TestCountOpenDisputes(t *testing.T) {
	disputeRepo := newStubDisputeRepo(
		&domain.Dispute{ID: "d1", Status: domain.DisputeOpen},
		&domain.Dispute{ID: "d2", Status: domain.DisputeOpen},
		&domain.Dispute{ID: "d3", Status: domain.DisputeRejected},
	)
	uc := NewDefaultDisputeUsecase(disputeRepo, newStubItemRepo(), newStubUserRepo(), nil, nil, nil)

	total, err := uc.CountOpenDisputes()
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
