package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	paymentdto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/payment"
)

type initiatePaymentRequest struct {
	OrderID     string  `json:"order_id"`
	BuyerID     string  `json:"buyer_id"`
	Provider    string  `json:"provider"`
	ExternalRef string  `json:"external_ref"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

type paymentResponse struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"order_id"`
	BuyerID     string  `json:"buyer_id"`
	Provider    string  `json:"provider"`
	ExternalRef string  `json:"external_ref"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

func toPaymentResponse(payment *domain.Payment) paymentResponse {
	return paymentResponse{
		ID: payment.ID,
		OrderID: payment.OrderID,
		BuyerID: payment.BuyerID,
		Provider: payment.Provider,
		ExternalRef: payment.ExternalRef,
		Amount: payment.Amount,
		Currency: payment.Currency,
		Status: string(payment.Status),
		CreatedAt: payment.CreatedAt.Format(time.RFC3339),
	}
}

// InitiatePayment регистрирует платеж в статусе INITIATED до прихода вебхука.
func (h *Handler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req initiatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if req.OrderID == "" || req.BuyerID == "" || req.Provider == "" || req.ExternalRef == "" || req.Amount <= 0 {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	payment, err := h.payments.InitiatePayment(&paymentdto.InitiatePaymentInput{
		OrderID: req.OrderID,
		BuyerID: req.BuyerID,
		Provider: req.Provider,
		ExternalRef: req.ExternalRef,
		Amount: req.Amount,
		Currency: req.Currency,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toPaymentResponse(payment))
}
