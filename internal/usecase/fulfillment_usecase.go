package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/kafka"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/metrics"
	fulfillmentdto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/fulfillment"
	notificationdto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/notification"
)

type FulfillmentUsecase interface {
	CreateItem(item *domain.OrderItem) (*domain.OrderItem, error)
	MarkShipped(ctx context.Context, input *fulfillmentdto.MarkShippedInput) (*domain.OrderItem, error)
	MarkDelivered(ctx context.Context, input *fulfillmentdto.MarkDeliveredInput) (*domain.OrderItem, error)
	MarkIssue(ctx context.Context, input *fulfillmentdto.MarkIssueInput) (*domain.OrderItem, error)
	GetItemByID(itemID string) (*domain.OrderItem, error)
	GetItemsBySellerID(sellerID string, page, limit int64) ([]*domain.OrderItem, int64, error)
}

type DefaultFulfillmentUsecase struct {
	itemRepo      domain.OrderItemRepository
	notifications NotificationUsecase
	publisher     *kafka.KafkaPublisher
	metrics       *metrics.FulfillmentMetrics
}

func NewDefaultFulfillmentUsecase(
	itemRepo domain.OrderItemRepository,
	notifications NotificationUsecase,
	publisher *kafka.KafkaPublisher,
	fulfillmentMetrics *metrics.FulfillmentMetrics,
	) *DefaultFulfillmentUsecase {
	return &DefaultFulfillmentUsecase{
		itemRepo: itemRepo,
		notifications: notifications,
		publisher: publisher,
		metrics: fulfillmentMetrics,
	}
}

// CreateItem регистрирует позицию заказа, пришедшую из checkout
func (uc *DefaultFulfillmentUsecase) CreateItem(item *domain.OrderItem) (*domain.OrderItem, error) {
	item.ID = uuid.NewString()
	item.FulfillmentStatus = domain.FulfillmentPacked
	item.PayoutStatus = domain.PayoutPending
	item.CreatedAt = time.Now()
	if err := uc.itemRepo.CreateOrderItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// MarkShipped перезаписывает статус без проверки предыдущего состояния позиции
func (uc *DefaultFulfillmentUsecase) MarkShipped(ctx context.Context, input *fulfillmentdto.MarkShippedInput) (*domain.OrderItem, error) {
	item, err := uc.itemRepo.GetOrderItemByID(input.OrderItemID)
	if err != nil {
		return nil, err
	}
	if item.SellerID != input.SellerID {
		return nil, domain.ErrNotItemOwner
	}

	now := time.Now()
	update := domain.ShipmentUpdate{
		Status: domain.FulfillmentShipped,
		Carrier: input.Carrier,
		TrackingCode: input.TrackingCode,
		Note: input.Note,
		ShippedAt: &now,
	}
	if err := uc.itemRepo.UpdateShipment(item.ID, update); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		carrier := ""
		if input.Carrier != nil {
			carrier = *input.Carrier
		}
		uc.metrics.RecordItemShipped(item.SellerID, carrier)
	}

	uc.publishFulfillmentEvent(item, domain.FulfillmentShipped, input.Carrier, input.TrackingCode)
	uc.notifyUser(ctx, item.BuyerID, &notificationdto.CreateNotificationInput{
		UserID: item.BuyerID,
		Type: domain.NotificationShipped,
		Title: "Your item has shipped",
		Body: "An item from your order is on its way.",
		Data: map[string]string{"order_item_id": item.ID},
		Channels: []domain.Channel{domain.ChannelEmail, domain.ChannelPush},
	})

	return uc.itemRepo.GetOrderItemByID(item.ID)
}

func (uc *DefaultFulfillmentUsecase) MarkDelivered(ctx context.Context, input *fulfillmentdto.MarkDeliveredInput) (*domain.OrderItem, error) {
	item, err := uc.itemRepo.GetOrderItemByID(input.OrderItemID)
	if err != nil {
		return nil, err
	}
	if item.SellerID != input.SellerID {
		return nil, domain.ErrNotItemOwner
	}

	now := time.Now()
	update := domain.ShipmentUpdate{
		Status: domain.FulfillmentDelivered,
		ProofURL: input.ProofURL,
		Note: input.Note,
		DeliveredAt: &now,
	}
	if err := uc.itemRepo.UpdateShipment(item.ID, update); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordItemDelivered(item.SellerID)
	}

	uc.publishFulfillmentEvent(item, domain.FulfillmentDelivered, nil, nil)
	uc.notifyUser(ctx, item.BuyerID, &notificationdto.CreateNotificationInput{
		UserID: item.BuyerID,
		Type: domain.NotificationDelivered,
		Title: "Your item was delivered",
		Body: "An item from your order has been delivered.",
		Data: map[string]string{"order_item_id": item.ID},
		Channels: []domain.Channel{domain.ChannelEmail, domain.ChannelPush},
	})

	return uc.itemRepo.GetOrderItemByID(item.ID)
}

func (uc *DefaultFulfillmentUsecase) MarkIssue(ctx context.Context, input *fulfillmentdto.MarkIssueInput) (*domain.OrderItem, error) {
	item, err := uc.itemRepo.GetOrderItemByID(input.OrderItemID)
	if err != nil {
		return nil, err
	}
	if item.SellerID != input.SellerID {
		return nil, domain.ErrNotItemOwner
	}

	update := domain.ShipmentUpdate{
		Status: domain.FulfillmentIssue,
		Note: &input.Note,
	}
	if err := uc.itemRepo.UpdateShipment(item.ID, update); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordItemIssue(item.SellerID)
	}

	uc.publishFulfillmentEvent(item, domain.FulfillmentIssue, nil, nil)
	uc.notifyUser(ctx, item.BuyerID, &notificationdto.CreateNotificationInput{
		UserID: item.BuyerID,
		Type: domain.NotificationIssue,
		Title: "Problem with your item",
		Body: "The seller flagged a problem with an item from your order: " + input.Note,
		Data: map[string]string{"order_item_id": item.ID},
		Channels: []domain.Channel{domain.ChannelEmail},
	})

	return uc.itemRepo.GetOrderItemByID(item.ID)
}

func (uc *DefaultFulfillmentUsecase) GetItemByID(itemID string) (*domain.OrderItem, error) {
	return uc.itemRepo.GetOrderItemByID(itemID)
}

func (uc *DefaultFulfillmentUsecase) GetItemsBySellerID(sellerID string, page, limit int64) ([]*domain.OrderItem, int64, error) {
	return uc.itemRepo.GetItemsBySellerID(sellerID, page, limit)
}

// Publish to Kafka асинхронно
func (uc *DefaultFulfillmentUsecase) publishFulfillmentEvent(item *domain.OrderItem, status domain.FulfillmentStatus, carrier, trackingCode *string) {
	if uc.publisher == nil {
		return
	}
	event := kafka.FulfillmentEvent{
		OrderItemID: item.ID,
		OrderID: item.OrderID,
		SellerID: item.SellerID,
		BuyerID: item.BuyerID,
		Status: string(status),
	}
	if carrier != nil {
		event.Carrier = *carrier
	}
	if trackingCode != nil {
		event.TrackingCode = *trackingCode
	}
	go func() {
		if err := uc.publisher.PublishFulfillment(event); err != nil {
			slog.Error("failed to publish FulfillmentEvent", "order_item_id", item.ID, "error", err.Error())
		}
	}()
}

// Ошибка уведомления логируется и глотается: статусная запись уже зафиксирована
func (uc *DefaultFulfillmentUsecase) notifyUser(ctx context.Context, userID string, input *notificationdto.CreateNotificationInput) {
	if uc.notifications == nil {
		return
	}
	if err := uc.notifications.Create(ctx, input); err != nil {
		slog.Error("failed to notify user", "user_id", userID, "type", string(input.Type), "error", err.Error())
	}
}
