package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	paymentdto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/payment"
)

type webhookPayload struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// PaymentWebhook принимает колбэк платежного провайдера; у каждого провайдера
// своя схема проверки подписи.
func (h *Handler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var verified bool
	switch provider {
	case "payrail":
		verified = verifyPayrailSignature(body, r.Header.Get("X-Payrail-Signature"), h.secrets.Payrail)
	case "quickpay":
		verified = verifyQuickpayToken(r.Header.Get("X-Quickpay-Token"), h.secrets.Quickpay)
	case "stellarpay":
		verified = verifyStellarpaySignature(body, r.Header.Get("Stellar-Signature"), h.secrets.Stellarpay)
	default:
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	if !verified {
		h.logger.Warn("webhook signature verification failed", zap.String("provider", provider))
		if h.metrics != nil {
			h.metrics.RecordWebhookSignatureError(provider)
		}
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if payload.Reference == "" || payload.Status == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	err = h.payments.HandleWebhook(r.Context(), &paymentdto.WebhookInput{
		Provider: provider,
		ExternalRef: payload.Reference,
		Succeeded: strings.EqualFold(payload.Status, "succeeded"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
