package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/kafka"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/metrics"
	disputedto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/dispute"
	notificationdto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/notification"
)

type DisputeUsecase interface {
	OpenDispute(ctx context.Context, input *disputedto.OpenDisputeInput) (*domain.Dispute, error)
	ResolveDispute(ctx context.Context, input *disputedto.ResolveDisputeInput) (*domain.Dispute, error)
	GetDisputeByID(disputeID string) (*domain.Dispute, error)
	GetDisputeByOrderItemID(orderItemID string) (*domain.Dispute, error)
	GetDisputes(filter domain.GetDisputesFilter) ([]*domain.Dispute, int64, error)
	CountOpenDisputes() (int64, error)
}

type DefaultDisputeUsecase struct {
	disputeRepo   domain.DisputeRepository
	itemRepo      domain.OrderItemRepository
	userRepo      domain.UserRepository
	notifications NotificationUsecase
	publisher     *kafka.KafkaPublisher
	metrics       *metrics.FulfillmentMetrics
}

func NewDefaultDisputeUsecase(
	disputeRepo domain.DisputeRepository,
	itemRepo domain.OrderItemRepository,
	userRepo domain.UserRepository,
	notifications NotificationUsecase,
	publisher *kafka.KafkaPublisher,
	fulfillmentMetrics *metrics.FulfillmentMetrics,
	) *DefaultDisputeUsecase {
	return &DefaultDisputeUsecase{
		disputeRepo: disputeRepo,
		itemRepo: itemRepo,
		userRepo: userRepo,
		notifications: notifications,
		publisher: publisher,
		metrics: fulfillmentMetrics,
	}
}

func validDisputeReason(reason string) bool {
	switch domain.DisputeReason(reason) {
	case domain.ReasonNotDelivered, domain.ReasonDamaged, domain.ReasonCounterfeit,
		domain.ReasonWrongItem, domain.ReasonOther:
		return true
	}
	return false
}

// OpenDispute: создание диспута, перевод позиции в ISSUE и уведомление продавца -
// три отдельные записи без общей транзакции
func (uc *DefaultDisputeUsecase) OpenDispute(ctx context.Context, input *disputedto.OpenDisputeInput) (*domain.Dispute, error) {
	item, err := uc.itemRepo.GetOrderItemByID(input.OrderItemID)
	if err != nil {
		return nil, err
	}
	if item.BuyerID != input.BuyerID {
		return nil, domain.ErrNotOrderBuyer
	}
	if !validDisputeReason(input.Reason) {
		return nil, domain.ErrInvalidReason
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	dispute := domain.Dispute{
		ID: idGenerator(),
		OrderItemID: input.OrderItemID,
		BuyerID: input.BuyerID,
		Reason: domain.DisputeReason(input.Reason),
		Description: input.Description,
		PhotoProofURL: input.PhotoProofURL,
		Status: domain.DisputeOpen,
		CreatedAt: time.Now(),
	}
	if err := uc.disputeRepo.CreateDispute(&dispute); err != nil {
		return nil, err
	}
	if err := uc.itemRepo.UpdateFulfillmentStatus(item.ID, domain.FulfillmentIssue); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordDisputeOpened(input.Reason)
	}
	uc.publishDisputeEvent(&dispute, item.SellerID)
	uc.notifyUser(ctx, item.SellerID, &notificationdto.CreateNotificationInput{
		UserID: item.SellerID,
		Type: domain.NotificationDisputeOpened,
		Title: "A buyer opened a dispute",
		Body: "A dispute was opened against one of your order items: " + input.Description,
		Data: map[string]string{"dispute_id": dispute.ID, "order_item_id": item.ID},
		Channels: []domain.Channel{domain.ChannelEmail, domain.ChannelSMS},
	})

	return &dispute, nil
}

// resolutionTargets сопоставляет терминальный статус диспута и принудительный статус позиции
func resolutionTargets(status string) (domain.DisputeStatus, domain.FulfillmentStatus, bool) {
	switch domain.DisputeStatus(status) {
	case domain.DisputeRedelivered:
		return domain.DisputeRedelivered, domain.FulfillmentDelivered, true
	case domain.DisputeRejected:
		return domain.DisputeRejected, domain.FulfillmentDelivered, true
	case domain.DisputeBuyerCompensated:
		return domain.DisputeBuyerCompensated, domain.FulfillmentIssue, true
	}
	return "", "", false
}

// ResolveDispute не защищен от повторного вызова: второй resolve молча перезапишет
// отметки и заметку
func (uc *DefaultDisputeUsecase) ResolveDispute(ctx context.Context, input *disputedto.ResolveDisputeInput) (*domain.Dispute, error) {
	dispute, err := uc.disputeRepo.GetDisputeByID(input.DisputeID)
	if err != nil {
		return nil, err
	}
	item, err := uc.itemRepo.GetOrderItemByID(dispute.OrderItemID)
	if err != nil {
		return nil, err
	}

	if input.ActorID != item.SellerID {
		actor, err := uc.userRepo.GetUserByID(input.ActorID)
		if err != nil {
			return nil, domain.ErrNotSellerOrAdmin
		}
		if actor.Role != domain.RoleAdmin {
			return nil, domain.ErrNotSellerOrAdmin
		}
	}

	disputeStatus, fulfillmentStatus, ok := resolutionTargets(input.Status)
	if !ok {
		return nil, domain.ErrInvalidDisputeStatus
	}

	resolvedAt := time.Now()
	if err := uc.disputeRepo.UpdateDisputeResolution(dispute.ID, disputeStatus, input.ResolutionNote, input.ActorID, resolvedAt); err != nil {
		return nil, err
	}
	if err := uc.itemRepo.UpdateFulfillmentStatus(item.ID, fulfillmentStatus); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordDisputeResolved(string(disputeStatus))
	}

	dispute.Status = disputeStatus
	dispute.ResolutionNote = input.ResolutionNote
	dispute.ResolvedByID = input.ActorID
	dispute.ResolvedAt = &resolvedAt

	uc.publishDisputeEvent(dispute, item.SellerID)
	uc.notifyUser(ctx, dispute.BuyerID, &notificationdto.CreateNotificationInput{
		UserID: dispute.BuyerID,
		Type: domain.NotificationDisputeResolved,
		Title: "Your dispute was resolved",
		Body: "Your dispute was closed with outcome " + string(disputeStatus) + ".",
		Data: map[string]string{"dispute_id": dispute.ID, "order_item_id": item.ID},
		Channels: []domain.Channel{domain.ChannelEmail, domain.ChannelPush},
	})

	return dispute, nil
}

func (uc *DefaultDisputeUsecase) GetDisputeByID(disputeID string) (*domain.Dispute, error) {
	return uc.disputeRepo.GetDisputeByID(disputeID)
}

func (uc *DefaultDisputeUsecase) GetDisputeByOrderItemID(orderItemID string) (*domain.Dispute, error) {
	return uc.disputeRepo.GetDisputeByOrderItemID(orderItemID)
}

func (uc *DefaultDisputeUsecase) GetDisputes(filter domain.GetDisputesFilter) ([]*domain.Dispute, int64, error) {
	return uc.disputeRepo.GetDisputes(filter)
}

func (uc *DefaultDisputeUsecase) CountOpenDisputes() (int64, error) {
	return uc.disputeRepo.CountDisputesByStatus(domain.DisputeOpen)
}

func (uc *DefaultDisputeUsecase) publishDisputeEvent(dispute *domain.Dispute, sellerID string) {
	if uc.publisher == nil {
		return
	}
	event := kafka.DisputeEvent{
		DisputeID: dispute.ID,
		OrderItemID: dispute.OrderItemID,
		BuyerID: dispute.BuyerID,
		SellerID: sellerID,
		Reason: string(dispute.Reason),
		Status: string(dispute.Status),
		ProofUrl: dispute.PhotoProofURL,
	}
	go func() {
		if err := uc.publisher.PublishDispute(event); err != nil {
			slog.Error("failed to publish DisputeEvent", "dispute_id", dispute.ID, "error", err.Error())
		}
	}()
}

func (uc *DefaultDisputeUsecase) notifyUser(ctx context.Context, userID string, input *notificationdto.CreateNotificationInput) {
	if uc.notifications == nil {
		return
	}
	if err := uc.notifications.Create(ctx, input); err != nil {
		slog.Error("failed to notify user", "user_id", userID, "type", string(input.Type), "error", err.Error())
	}
}
