package httpapi

import (
	"encoding/json"
	"net/http"

	payoutdto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/payout"
)

type markPaidOutRequest struct {
	OrderItemIDs []string `json:"order_item_ids"`
	BatchID      string   `json:"batch_id"`
}

type sellerPayoutTotalResponse struct {
	SellerID   string  `json:"seller_id"`
	Currency   string  `json:"currency"`
	ItemsCount int64   `json:"items_count"`
	NetTotal   float64 `json:"net_total"`
}

// MarkPaidOut помечает позиции выплаченными в рамках одного батча.
func (h *Handler) MarkPaidOut(w http.ResponseWriter, r *http.Request) {
	var req markPaidOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if len(req.OrderItemIDs) == 0 || req.BatchID == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	totals, err := h.payouts.MarkPaidOut(r.Context(), &payoutdto.MarkPaidOutInput{
		OrderItemIDs: req.OrderItemIDs,
		BatchID: req.BatchID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]sellerPayoutTotalResponse, 0, len(totals))
	for _, total := range totals {
		resp = append(resp, sellerPayoutTotalResponse{
			SellerID: total.SellerID,
			Currency: total.Currency,
			ItemsCount: total.ItemsCount,
			NetTotal: total.NetTotal,
		})
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// ExportPayoutsCSV выгружает выплаченные позиции продавца в CSV.
func (h *Handler) ExportPayoutsCSV(w http.ResponseWriter, r *http.Request) {
	sellerID := r.URL.Query().Get("seller_id")
	if sellerID == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="payouts.csv"`)
	if err := h.payouts.ExportSellerPayoutsCSV(sellerID, w); err != nil {
		h.logger.Error("csv export error")
	}
}
