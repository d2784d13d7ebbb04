package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/kafka"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/metrics"
	notificationdto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/notification"
	payoutdto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/payout"
)

type PayoutUsecase interface {
	MarkPaidOut(ctx context.Context, input *payoutdto.MarkPaidOutInput) ([]domain.SellerPayoutTotal, error)
	ExportSellerPayoutsCSV(sellerID string, w io.Writer) error
}

type DefaultPayoutUsecase struct {
	itemRepo      domain.OrderItemRepository
	notifications NotificationUsecase
	publisher     *kafka.KafkaPublisher
	metrics       *metrics.FulfillmentMetrics
}

func NewDefaultPayoutUsecase(
	itemRepo domain.OrderItemRepository,
	notifications NotificationUsecase,
	publisher *kafka.KafkaPublisher,
	fulfillmentMetrics *metrics.FulfillmentMetrics,
	) *DefaultPayoutUsecase {
	return &DefaultPayoutUsecase{
		itemRepo: itemRepo,
		notifications: notifications,
		publisher: publisher,
		metrics: fulfillmentMetrics,
	}
}

// MarkPaidOut безусловно помечает позиции выплаченными: batch id задается вызывающей
// стороной и является границей доверия с внешним payout-процессом
func (uc *DefaultPayoutUsecase) MarkPaidOut(ctx context.Context, input *payoutdto.MarkPaidOutInput) ([]domain.SellerPayoutTotal, error) {
	if len(input.OrderItemIDs) == 0 || input.BatchID == "" {
		return nil, fmt.Errorf("order item ids and batch id are required")
	}

	paidOutAt := time.Now()
	if err := uc.itemRepo.MarkPaidOut(input.OrderItemIDs, input.BatchID, paidOutAt); err != nil {
		return nil, err
	}

	items, err := uc.itemRepo.GetItemsByBatchID(input.BatchID)
	if err != nil {
		return nil, err
	}

	totalsBySeller := make(map[string]*domain.SellerPayoutTotal)
	for _, item := range items {
		total, ok := totalsBySeller[item.SellerID]
		if !ok {
			total = &domain.SellerPayoutTotal{SellerID: item.SellerID, Currency: item.Currency}
			totalsBySeller[item.SellerID] = total
		}
		total.ItemsCount++
		total.NetTotal += item.NetAmount
	}

	totals := make([]domain.SellerPayoutTotal, 0, len(totalsBySeller))
	for _, total := range totalsBySeller {
		totals = append(totals, *total)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].SellerID < totals[j].SellerID })

	for _, total := range totals {
		if uc.metrics != nil {
			uc.metrics.RecordPayout(total.SellerID, total.Currency, total.ItemsCount, total.NetTotal)
		}
		uc.publishPayoutEvent(input.BatchID, total)
		uc.notifySeller(ctx, input.BatchID, total)
	}

	return totals, nil
}

// ExportSellerPayoutsCSV выгружает выплаченные позиции продавца
func (uc *DefaultPayoutUsecase) ExportSellerPayoutsCSV(sellerID string, w io.Writer) error {
	items, err := uc.itemRepo.GetPaidOutItemsBySellerID(sellerID)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"item_id", "order_id", "product_id", "quantity", "gross_amount", "fee_amount", "net_amount", "currency", "payout_batch_id", "paid_out_at"}); err != nil {
		return err
	}
	for _, item := range items {
		paidOutAt := ""
		if item.PaidOutAt != nil {
			paidOutAt = item.PaidOutAt.Format(time.RFC3339)
		}
		record := []string{
			item.ID,
			item.OrderID,
			item.ProductID,
			fmt.Sprintf("%d", item.Quantity),
			fmt.Sprintf("%.2f", item.GrossAmount),
			fmt.Sprintf("%.2f", item.FeeAmount),
			fmt.Sprintf("%.2f", item.NetAmount),
			item.Currency,
			item.PayoutBatchID,
			paidOutAt,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func (uc *DefaultPayoutUsecase) publishPayoutEvent(batchID string, total domain.SellerPayoutTotal) {
	if uc.publisher == nil {
		return
	}
	event := kafka.PayoutEvent{
		BatchID: batchID,
		SellerID: total.SellerID,
		ItemsCount: total.ItemsCount,
		NetTotal: total.NetTotal,
		Currency: total.Currency,
	}
	go func() {
		if err := uc.publisher.PublishPayout(event); err != nil {
			slog.Error("failed to publish PayoutEvent", "batch_id", batchID, "seller_id", total.SellerID, "error", err.Error())
		}
	}()
}

func (uc *DefaultPayoutUsecase) notifySeller(ctx context.Context, batchID string, total domain.SellerPayoutTotal) {
	if uc.notifications == nil {
		return
	}
	err := uc.notifications.Create(ctx, &notificationdto.CreateNotificationInput{
		UserID: total.SellerID,
		Type: domain.NotificationPayoutReleased,
		Title: "Payout released",
		Body: fmt.Sprintf("A payout of %.2f %s for %d items was released.", total.NetTotal, total.Currency, total.ItemsCount),
		Data: map[string]string{"payout_batch_id": batchID},
		Channels: []domain.Channel{domain.ChannelEmail},
	})
	if err != nil {
		slog.Error("failed to notify seller about payout", "seller_id", total.SellerID, "batch_id", batchID, "error", err.Error())
	}
}
