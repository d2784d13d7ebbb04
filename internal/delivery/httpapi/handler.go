// Package httpapi содержит HTTP-обработчики REST API сервиса фулфилмента.
package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sokonova/sokonova-fulfillment-service/internal/config"
	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/metrics"
	"github.com/sokonova/sokonova-fulfillment-service/internal/usecase"
)

// Handler реализует HTTP-обработчики REST API.
type Handler struct {
	fulfillment   usecase.FulfillmentUsecase
	disputes      usecase.DisputeUsecase
	notifications usecase.NotificationUsecase
	payouts       usecase.PayoutUsecase
	payments      usecase.PaymentUsecase
	catalog       usecase.CatalogUsecase
	secrets       config.WebhookSecrets
	metrics       *metrics.FulfillmentMetrics
	logger        *zap.Logger
}

func NewHandler(
	fulfillment usecase.FulfillmentUsecase,
	disputes usecase.DisputeUsecase,
	notifications usecase.NotificationUsecase,
	payouts usecase.PayoutUsecase,
	payments usecase.PaymentUsecase,
	catalog usecase.CatalogUsecase,
	secrets config.WebhookSecrets,
	fulfillmentMetrics *metrics.FulfillmentMetrics,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		fulfillment: fulfillment,
		disputes: disputes,
		notifications: notifications,
		payouts: payouts,
		payments: payments,
		catalog: catalog,
		secrets: secrets,
		metrics: fulfillmentMetrics,
		logger: logger,
	}
}

// writeError отображает доменные ошибки на семейство HTTP-статусов
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderItemNotFound),
		errors.Is(err, domain.ErrDisputeNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrSellerNotFound):
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	case errors.Is(err, domain.ErrNotItemOwner),
		errors.Is(err, domain.ErrNotOrderBuyer),
		errors.Is(err, domain.ErrNotSellerOrAdmin):
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
	case errors.Is(err, domain.ErrInvalidReason),
		errors.Is(err, domain.ErrInvalidDisputeStatus):
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
	default:
		h.logger.Error("internal error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
