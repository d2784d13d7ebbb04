package usecase

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	payoutdto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/payout"
)

func TestMarkPaidOut_AggregatesPerSeller(t *testing.T) {
	itemRepo := newStubItemRepo(
		&domain.OrderItem{ID: "item-1", SellerID: "seller-1", NetAmount: 90, Currency: "KES", PayoutStatus: domain.PayoutPending},
		&domain.OrderItem{ID: "item-2", SellerID: "seller-1", NetAmount: 45, Currency: "KES", PayoutStatus: domain.PayoutPending},
		&domain.OrderItem{ID: "item-3", SellerID: "seller-2", NetAmount: 200, Currency: "KES", PayoutStatus: domain.PayoutPending},
	)
	notifications := &recordingNotifications{}
	uc := NewDefaultPayoutUsecase(itemRepo, notifications, nil, nil)

	totals, err := uc.MarkPaidOut(context.Background(), &payoutdto.MarkPaidOutInput{
		OrderItemIDs: []string{"item-1", "item-2", "item-3"},
		BatchID:      "batch-2025-06",
	})
	require.NoError(t, err)

	require.Len(t, totals, 2)
	assert.Equal(t, "seller-1", totals[0].SellerID)
	assert.Equal(t, int64(2), totals[0].ItemsCount)
	assert.InDelta(t, 135, totals[0].NetTotal, 0.001)
	assert.Equal(t, "seller-2", totals[1].SellerID)
	assert.Equal(t, int64(1), totals[1].ItemsCount)
	assert.InDelta(t, 200, totals[1].NetTotal, 0.001)

	for _, id := range []string{"item-1", "item-2", "item-3"} {
		item, _ := itemRepo.GetOrderItemByID(id)
		assert.Equal(t, domain.PayoutPaidOut, item.PayoutStatus)
		assert.Equal(t, "batch-2025-06", item.PayoutBatchID)
		assert.NotNil(t, item.PaidOutAt)
	}

	// по одному уведомлению на продавца
	require.Len(t, notifications.created, 2)
	assert.Equal(t, domain.NotificationPayoutReleased, notifications.created[0].Type)
}

func TestMarkPaidOut_EmptyInput(t *testing.T) {
	uc := NewDefaultPayoutUsecase(newStubItemRepo(), nil, nil, nil)

	_, err := uc.MarkPaidOut(context.Background(), &payoutdto.MarkPaidOutInput{BatchID: "batch-1"})
	assert.Error(t, err)

	_, err = uc.MarkPaidOut(context.Background(), &payoutdto.MarkPaidOutInput{OrderItemIDs: []string{"item-1"}})
	assert.Error(t, err)
}

// Повторный вызов с тем же батчем перезаписывает те же поля и дает те же итоги
func TestMarkPaidOut_Repeatable(t *testing.T) {
	itemRepo := newStubItemRepo(
		&domain.OrderItem{ID: "item-1", SellerID: "seller-1", NetAmount: 50, Currency: "KES", PayoutStatus: domain.PayoutPending},
	)
	uc := NewDefaultPayoutUsecase(itemRepo, nil, nil, nil)

	input := &payoutdto.MarkPaidOutInput{OrderItemIDs: []string{"item-1"}, BatchID: "batch-1"}
	first, err := uc.MarkPaidOut(context.Background(), input)
	require.NoError(t, err)
	second, err := uc.MarkPaidOut(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	item, _ := itemRepo.GetOrderItemByID("item-1")
	assert.Equal(t, domain.PayoutPaidOut, item.PayoutStatus)
}

func TestExportSellerPayoutsCSV(t *testing.T) {
	paidOutAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	itemRepo := newStubItemRepo(
		&domain.OrderItem{
			ID: "item-1", OrderID: "order-1", ProductID: "product-1", SellerID: "seller-1",
			Quantity: 2, GrossAmount: 100, FeeAmount: 10, NetAmount: 90, Currency: "KES",
			PayoutStatus: domain.PayoutPaidOut, PayoutBatchID: "batch-1", PaidOutAt: &paidOutAt,
		},
		&domain.OrderItem{ID: "item-2", SellerID: "seller-1", PayoutStatus: domain.PayoutPending},
		&domain.OrderItem{ID: "item-3", SellerID: "seller-2", PayoutStatus: domain.PayoutPaidOut},
	)
	uc := NewDefaultPayoutUsecase(itemRepo, nil, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, uc.ExportSellerPayoutsCSV("seller-1", &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2) // заголовок + одна выплаченная позиция
	assert.Equal(t, "item_id,order_id,product_id,quantity,gross_amount,fee_amount,net_amount,currency,payout_batch_id,paid_out_at", lines[0])
	assert.Equal(t, "item-1,order-1,product-1,2,100.00,10.00,90.00,KES,batch-1,2025-06-01T10:00:00Z", lines[1])
}

func TestExportSellerPayoutsCSV_NoItems(t *testing.T) {
	uc := NewDefaultPayoutUsecase(newStubItemRepo(), nil, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, uc.ExportSellerPayoutsCSV("seller-1", &buf))
	assert.Equal(t, "item_id,order_id,product_id,quantity,gross_amount,fee_amount,net_amount,currency,payout_batch_id,paid_out_at\n", buf.String())
}
