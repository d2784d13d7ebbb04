package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	disputedto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/dispute"
)

type openDisputeRequest struct {
	OrderItemID   string `json:"order_item_id"`
	BuyerID       string `json:"buyer_id"`
	Reason        string `json:"reason"`
	Description   string `json:"description"`
	PhotoProofURL string `json:"photo_proof_url,omitempty"`
}

type resolveDisputeRequest struct {
	ActorID        string `json:"actor_id"`
	Status         string `json:"status"`
	ResolutionNote string `json:"resolution_note,omitempty"`
}

type disputeResponse struct {
	ID             string `json:"id"`
	OrderItemID    string `json:"order_item_id"`
	BuyerID        string `json:"buyer_id"`
	Reason         string `json:"reason"`
	Description    string `json:"description"`
	PhotoProofURL  string `json:"photo_proof_url,omitempty"`
	Status         string `json:"status"`
	ResolutionNote string `json:"resolution_note,omitempty"`
	ResolvedByID   string `json:"resolved_by_id,omitempty"`
	ResolvedAt     string `json:"resolved_at,omitempty"`
	CreatedAt      string `json:"created_at"`
}

func toDisputeResponse(dispute *domain.Dispute) disputeResponse {
	resp := disputeResponse{
		ID: dispute.ID,
		OrderItemID: dispute.OrderItemID,
		BuyerID: dispute.BuyerID,
		Reason: string(dispute.Reason),
		Description: dispute.Description,
		PhotoProofURL: dispute.PhotoProofURL,
		Status: string(dispute.Status),
		ResolutionNote: dispute.ResolutionNote,
		ResolvedByID: dispute.ResolvedByID,
		CreatedAt: dispute.CreatedAt.Format(time.RFC3339),
	}
	if dispute.ResolvedAt != nil {
		resp.ResolvedAt = dispute.ResolvedAt.Format(time.RFC3339)
	}
	return resp
}

// OpenDispute создает диспут от имени покупателя.
func (h *Handler) OpenDispute(w http.ResponseWriter, r *http.Request) {
	var req openDisputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if req.OrderItemID == "" || req.BuyerID == "" || req.Reason == "" || req.Description == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	dispute, err := h.disputes.OpenDispute(r.Context(), &disputedto.OpenDisputeInput{
		OrderItemID: req.OrderItemID,
		BuyerID: req.BuyerID,
		Reason: req.Reason,
		Description: req.Description,
		PhotoProofURL: req.PhotoProofURL,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toDisputeResponse(dispute))
}

// ResolveDispute закрывает диспут от имени продавца или администратора.
func (h *Handler) ResolveDispute(w http.ResponseWriter, r *http.Request) {
	disputeID := chi.URLParam(r, "disputeID")

	var req resolveDisputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if req.ActorID == "" || req.Status == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	dispute, err := h.disputes.ResolveDispute(r.Context(), &disputedto.ResolveDisputeInput{
		DisputeID: disputeID,
		ActorID: req.ActorID,
		Status: req.Status,
		ResolutionNote: req.ResolutionNote,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toDisputeResponse(dispute))
}

// GetDispute возвращает диспут по id.
func (h *Handler) GetDispute(w http.ResponseWriter, r *http.Request) {
	disputeID := chi.URLParam(r, "disputeID")

	dispute, err := h.disputes.GetDisputeByID(disputeID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toDisputeResponse(dispute))
}

// GetItemDispute возвращает диспут, открытый по позиции заказа.
func (h *Handler) GetItemDispute(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	dispute, err := h.disputes.GetDisputeByOrderItemID(itemID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toDisputeResponse(dispute))
}

type disputeListResponse struct {
	Disputes []disputeResponse `json:"disputes"`
	Total    int64             `json:"total"`
}

// GetDisputes возвращает список диспутов по фильтру.
func (h *Handler) GetDisputes(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	filter := domain.GetDisputesFilter{
		Page: int(page),
		Limit: int(limit),
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("seller_id"); v != "" {
		filter.SellerID = &v
	}
	if v := r.URL.Query().Get("buyer_id"); v != "" {
		filter.BuyerID = &v
	}
	if v := r.URL.Query().Get("order_item_id"); v != "" {
		filter.OrderItemID = &v
	}

	disputes, total, err := h.disputes.GetDisputes(filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := disputeListResponse{
		Disputes: make([]disputeResponse, 0, len(disputes)),
		Total: total,
	}
	for _, dispute := range disputes {
		resp.Disputes = append(resp.Disputes, toDisputeResponse(dispute))
	}

	h.writeJSON(w, http.StatusOK, resp)
}
