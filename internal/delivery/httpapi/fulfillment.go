package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	fulfillmentdto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/fulfillment"
)

type createOrderItemRequest struct {
	OrderID     string  `json:"order_id"`
	SellerID    string  `json:"seller_id"`
	BuyerID     string  `json:"buyer_id"`
	ProductID   string  `json:"product_id"`
	Quantity    int32   `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	GrossAmount float64 `json:"gross_amount"`
	FeeAmount   float64 `json:"fee_amount"`
	NetAmount   float64 `json:"net_amount"`
	Currency    string  `json:"currency"`
}

type markShippedRequest struct {
	SellerID     string  `json:"seller_id"`
	Carrier      *string `json:"carrier,omitempty"`
	TrackingCode *string `json:"tracking_code,omitempty"`
	Note         *string `json:"note,omitempty"`
}

type markDeliveredRequest struct {
	SellerID string  `json:"seller_id"`
	ProofURL *string `json:"proof_url,omitempty"`
	Note     *string `json:"note,omitempty"`
}

type markIssueRequest struct {
	SellerID string `json:"seller_id"`
	Note     string `json:"note"`
}

type orderItemResponse struct {
	ID                string  `json:"id"`
	OrderID           string  `json:"order_id"`
	SellerID          string  `json:"seller_id"`
	BuyerID           string  `json:"buyer_id"`
	ProductID         string  `json:"product_id"`
	Quantity          int32   `json:"quantity"`
	UnitPrice         float64 `json:"unit_price"`
	GrossAmount       float64 `json:"gross_amount"`
	FeeAmount         float64 `json:"fee_amount"`
	NetAmount         float64 `json:"net_amount"`
	Currency          string  `json:"currency"`
	FulfillmentStatus string  `json:"fulfillment_status"`
	PayoutStatus      string  `json:"payout_status"`
	PayoutBatchID     string  `json:"payout_batch_id,omitempty"`
	Carrier           string  `json:"carrier,omitempty"`
	TrackingCode      string  `json:"tracking_code,omitempty"`
	ShippedAt         string  `json:"shipped_at,omitempty"`
	DeliveredAt       string  `json:"delivered_at,omitempty"`
	ProofURL          string  `json:"proof_url,omitempty"`
	Note              string  `json:"note,omitempty"`
}

func toOrderItemResponse(item *domain.OrderItem) orderItemResponse {
	resp := orderItemResponse{
		ID: item.ID,
		OrderID: item.OrderID,
		SellerID: item.SellerID,
		BuyerID: item.BuyerID,
		ProductID: item.ProductID,
		Quantity: item.Quantity,
		UnitPrice: item.UnitPrice,
		GrossAmount: item.GrossAmount,
		FeeAmount: item.FeeAmount,
		NetAmount: item.NetAmount,
		Currency: item.Currency,
		FulfillmentStatus: string(item.FulfillmentStatus),
		PayoutStatus: string(item.PayoutStatus),
		PayoutBatchID: item.PayoutBatchID,
		Carrier: item.Carrier,
		TrackingCode: item.TrackingCode,
		ProofURL: item.ProofURL,
		Note: item.Note,
	}
	if item.ShippedAt != nil {
		resp.ShippedAt = item.ShippedAt.Format(time.RFC3339)
	}
	if item.DeliveredAt != nil {
		resp.DeliveredAt = item.DeliveredAt.Format(time.RFC3339)
	}
	return resp
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response error")
	}
}

// CreateOrderItem регистрирует позицию заказа, поступившую из checkout.
func (h *Handler) CreateOrderItem(w http.ResponseWriter, r *http.Request) {
	var req createOrderItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if req.OrderID == "" || req.SellerID == "" || req.BuyerID == "" || req.ProductID == "" || req.Quantity <= 0 {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	item, err := h.fulfillment.CreateItem(&domain.OrderItem{
		OrderID: req.OrderID,
		SellerID: req.SellerID,
		BuyerID: req.BuyerID,
		ProductID: req.ProductID,
		Quantity: req.Quantity,
		UnitPrice: req.UnitPrice,
		GrossAmount: req.GrossAmount,
		FeeAmount: req.FeeAmount,
		NetAmount: req.NetAmount,
		Currency: req.Currency,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toOrderItemResponse(item))
}

// MarkShipped отмечает позицию отправленной от имени продавца.
func (h *Handler) MarkShipped(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	var req markShippedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if req.SellerID == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	item, err := h.fulfillment.MarkShipped(r.Context(), &fulfillmentdto.MarkShippedInput{
		OrderItemID: itemID,
		SellerID: req.SellerID,
		Carrier: req.Carrier,
		TrackingCode: req.TrackingCode,
		Note: req.Note,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toOrderItemResponse(item))
}

// MarkDelivered отмечает позицию доставленной от имени продавца.
func (h *Handler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	var req markDeliveredRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if req.SellerID == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	item, err := h.fulfillment.MarkDelivered(r.Context(), &fulfillmentdto.MarkDeliveredInput{
		OrderItemID: itemID,
		SellerID: req.SellerID,
		ProofURL: req.ProofURL,
		Note: req.Note,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toOrderItemResponse(item))
}

// MarkIssue переводит позицию в статус ISSUE от имени продавца.
func (h *Handler) MarkIssue(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	var req markIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if req.SellerID == "" || req.Note == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	item, err := h.fulfillment.MarkIssue(r.Context(), &fulfillmentdto.MarkIssueInput{
		OrderItemID: itemID,
		SellerID: req.SellerID,
		Note: req.Note,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toOrderItemResponse(item))
}

// GetOrderItem возвращает позицию заказа по id.
func (h *Handler) GetOrderItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	item, err := h.fulfillment.GetItemByID(itemID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toOrderItemResponse(item))
}

type orderItemListResponse struct {
	Items []orderItemResponse `json:"items"`
	Total int64               `json:"total"`
}

// GetSellerItems возвращает позиции заказов продавца.
func (h *Handler) GetSellerItems(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "sellerID")
	page, limit := parsePagination(r)

	items, total, err := h.fulfillment.GetItemsBySellerID(sellerID, page, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := orderItemListResponse{
		Items: make([]orderItemResponse, 0, len(items)),
		Total: total,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, toOrderItemResponse(item))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func parsePagination(r *http.Request) (int64, int64) {
	page := int64(1)
	limit := int64(20)
	if v := r.URL.Query().Get("page"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	return page, limit
}
