package domain

import "time"

type Product struct {
	ID        string
	SellerID  string
	Title     string
	Category  string
	Price     float64
	Currency  string
	Stock     int32
	ViewCount int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SellerProfile struct {
	ID             string
	DisplayName    string
	Rating         float64
	PayoutCurrency string
	CreatedAt      time.Time
}

type ProductRepository interface {
	CreateProduct(product *Product) error
	GetProductByID(productID string) (*Product, error)
	IncrementViewCount(productID string) error
	GetProducts(category string, page, limit int64) ([]*Product, int64, error)
}

type SellerProfileRepository interface {
	CreateSellerProfile(profile *SellerProfile) error
	GetSellerProfileByID(sellerID string) (*SellerProfile, error)
}
