package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/metrics"
	notificationdto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/notification"
	paymentdto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/payment"
)

type PaymentUsecase interface {
	InitiatePayment(input *paymentdto.InitiatePaymentInput) (*domain.Payment, error)
	HandleWebhook(ctx context.Context, input *paymentdto.WebhookInput) error
}

type DefaultPaymentUsecase struct {
	paymentRepo   domain.PaymentRepository
	notifications NotificationUsecase
	metrics       *metrics.FulfillmentMetrics
}

func NewDefaultPaymentUsecase(
	paymentRepo domain.PaymentRepository,
	notifications NotificationUsecase,
	fulfillmentMetrics *metrics.FulfillmentMetrics,
	) *DefaultPaymentUsecase {
	return &DefaultPaymentUsecase{
		paymentRepo: paymentRepo,
		notifications: notifications,
		metrics: fulfillmentMetrics,
	}
}

func (uc *DefaultPaymentUsecase) InitiatePayment(input *paymentdto.InitiatePaymentInput) (*domain.Payment, error) {
	payment := domain.Payment{
		ID: uuid.NewString(),
		OrderID: input.OrderID,
		BuyerID: input.BuyerID,
		Provider: input.Provider,
		ExternalRef: input.ExternalRef,
		Amount: input.Amount,
		Currency: input.Currency,
		Status: domain.PaymentInitiated,
		CreatedAt: time.Now(),
	}
	if err := uc.paymentRepo.CreatePayment(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// HandleWebhook: слабая идемпотентность read-then-write - если платеж уже терминальный,
// повторная доставка вебхука является no-op
func (uc *DefaultPaymentUsecase) HandleWebhook(ctx context.Context, input *paymentdto.WebhookInput) error {
	payment, err := uc.paymentRepo.GetPaymentByExternalRef(input.Provider, input.ExternalRef)
	if err != nil {
		return err
	}

	if payment.Status.IsTerminal() {
		if uc.metrics != nil {
			uc.metrics.RecordWebhook(input.Provider, "duplicate")
		}
		return nil
	}

	newStatus := domain.PaymentFailed
	notificationType := domain.NotificationPaymentFailed
	title := "Payment failed"
	body := "Your payment could not be processed."
	if input.Succeeded {
		newStatus = domain.PaymentSucceeded
		notificationType = domain.NotificationPaymentSucceeded
		title = "Payment confirmed"
		body = "Your payment was processed successfully."
	}

	if err := uc.paymentRepo.UpdatePaymentStatus(payment.ID, newStatus); err != nil {
		return err
	}
	if uc.metrics != nil {
		uc.metrics.RecordWebhook(input.Provider, string(newStatus))
	}

	if uc.notifications != nil {
		err := uc.notifications.Create(ctx, &notificationdto.CreateNotificationInput{
			UserID: payment.BuyerID,
			Type: notificationType,
			Title: title,
			Body: body,
			Data: map[string]string{"order_id": payment.OrderID, "payment_id": payment.ID},
			Channels: []domain.Channel{domain.ChannelEmail},
		})
		if err != nil {
			slog.Error("failed to notify buyer about payment", "payment_id", payment.ID, "error", err.Error())
		}
	}

	return nil
}
