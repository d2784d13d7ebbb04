package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
)

type createProductRequest struct {
	SellerID string  `json:"seller_id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Stock    int32   `json:"stock"`
}

type productResponse struct {
	ID        string  `json:"id"`
	SellerID  string  `json:"seller_id"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Stock     int32   `json:"stock"`
	ViewCount int64   `json:"view_count"`
}

func toProductResponse(product *domain.Product) productResponse {
	return productResponse{
		ID: product.ID,
		SellerID: product.SellerID,
		Title: product.Title,
		Category: product.Category,
		Price: product.Price,
		Currency: product.Currency,
		Stock: product.Stock,
		ViewCount: product.ViewCount,
	}
}

// CreateProduct создает товар продавца.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if req.SellerID == "" || req.Title == "" || req.Price < 0 {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	product, err := h.catalog.CreateProduct(&domain.Product{
		SellerID: req.SellerID,
		Title: req.Title,
		Category: req.Category,
		Price: req.Price,
		Currency: req.Currency,
		Stock: req.Stock,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toProductResponse(product))
}

// GetProduct возвращает товар и инкрементирует счетчик просмотров.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, err := h.catalog.GetProduct(productID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toProductResponse(product))
}

type productListResponse struct {
	Products []productResponse `json:"products"`
	Total    int64             `json:"total"`
}

// GetProducts возвращает витрину: фильтр по категории, сортировка по просмотрам.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	category := r.URL.Query().Get("category")

	products, total, err := h.catalog.GetProducts(category, page, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := productListResponse{
		Products: make([]productResponse, 0, len(products)),
		Total: total,
	}
	for _, product := range products {
		resp.Products = append(resp.Products, toProductResponse(product))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

type createSellerProfileRequest struct {
	ID             string `json:"id,omitempty"`
	DisplayName    string `json:"display_name"`
	PayoutCurrency string `json:"payout_currency"`
}

// CreateSellerProfile создает публичный профиль продавца.
func (h *Handler) CreateSellerProfile(w http.ResponseWriter, r *http.Request) {
	var req createSellerProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if req.DisplayName == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	profile, err := h.catalog.CreateSellerProfile(&domain.SellerProfile{
		ID: req.ID,
		DisplayName: req.DisplayName,
		PayoutCurrency: req.PayoutCurrency,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, sellerProfileResponse{
		ID: profile.ID,
		DisplayName: profile.DisplayName,
		Rating: profile.Rating,
		PayoutCurrency: profile.PayoutCurrency,
	})
}

type sellerProfileResponse struct {
	ID             string  `json:"id"`
	DisplayName    string  `json:"display_name"`
	Rating         float64 `json:"rating"`
	PayoutCurrency string  `json:"payout_currency"`
}

// GetSellerProfile возвращает публичный профиль продавца.
func (h *Handler) GetSellerProfile(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "sellerID")

	profile, err := h.catalog.GetSellerProfile(sellerID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, sellerProfileResponse{
		ID: profile.ID,
		DisplayName: profile.DisplayName,
		Rating: profile.Rating,
		PayoutCurrency: profile.PayoutCurrency,
	})
}
