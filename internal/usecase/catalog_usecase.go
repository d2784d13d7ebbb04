package usecase

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
)

type CatalogUsecase interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	GetProduct(productID string) (*domain.Product, error)
	GetProducts(category string, page, limit int64) ([]*domain.Product, int64, error)
	CreateSellerProfile(profile *domain.SellerProfile) (*domain.SellerProfile, error)
	GetSellerProfile(sellerID string) (*domain.SellerProfile, error)
}

type DefaultCatalogUsecase struct {
	productRepo domain.ProductRepository
	sellerRepo  domain.SellerProfileRepository
}

func NewDefaultCatalogUsecase(productRepo domain.ProductRepository, sellerRepo domain.SellerProfileRepository) *DefaultCatalogUsecase {
	return &DefaultCatalogUsecase{
		productRepo: productRepo,
		sellerRepo: sellerRepo,
	}
}

func (uc *DefaultCatalogUsecase) CreateProduct(product *domain.Product) (*domain.Product, error) {
	product.ID = uuid.NewString()
	product.CreatedAt = time.Now()
	if err := uc.productRepo.CreateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct инкрементирует счетчик просмотров best-effort
func (uc *DefaultCatalogUsecase) GetProduct(productID string) (*domain.Product, error) {
	product, err := uc.productRepo.GetProductByID(productID)
	if err != nil {
		return nil, err
	}
	if err := uc.productRepo.IncrementViewCount(productID); err != nil {
		slog.Error("failed to increment view count", "product_id", productID, "error", err.Error())
	}
	return product, nil
}

func (uc *DefaultCatalogUsecase) GetProducts(category string, page, limit int64) ([]*domain.Product, int64, error) {
	return uc.productRepo.GetProducts(category, page, limit)
}

func (uc *DefaultCatalogUsecase) CreateSellerProfile(profile *domain.SellerProfile) (*domain.SellerProfile, error) {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	profile.CreatedAt = time.Now()
	if err := uc.sellerRepo.CreateSellerProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (uc *DefaultCatalogUsecase) GetSellerProfile(sellerID string) (*domain.SellerProfile, error) {
	return uc.sellerRepo.GetSellerProfileByID(sellerID)
}
