package repository

import (
	"errors"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/mappers"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	db *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{db: db}
}

func (r *DefaultProductRepository) CreateProduct(product *domain.Product) error {
	productModel := mappers.ToGORMProduct(product)
	if err := r.db.Create(&productModel).Error; err != nil {
		return err
	}
	product.ID = productModel.ID
	return nil
}

func (r *DefaultProductRepository) GetProductByID(productID string) (*domain.Product, error) {
	var productModel models.ProductModel
	if err := r.db.Model(&models.ProductModel{}).Where("id = ?", productID).First(&productModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	return mappers.ToDomainProduct(&productModel), nil
}

func (r *DefaultProductRepository) IncrementViewCount(productID string) error {
	return r.db.Model(&models.ProductModel{ID: productID}).
		Update("view_count", gorm.Expr("view_count + 1")).Error
}

// GetProducts - витрина: фильтр по категории, сортировка по просмотрам
func (r *DefaultProductRepository) GetProducts(category string, page, limit int64) ([]*domain.Product, int64, error) {
	query := r.db.Model(&models.ProductModel{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	var productModels []models.ProductModel
	if err := query.
		Order("view_count DESC").
		Offset(int(offset)).Limit(int(limit)).
		Find(&productModels).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*domain.Product, len(productModels))
	for i, productModel := range productModels {
		products[i] = mappers.ToDomainProduct(&productModel)
	}

	return products, total, nil
}

type DefaultSellerProfileRepository struct {
	db *gorm.DB
}

func NewDefaultSellerProfileRepository(db *gorm.DB) *DefaultSellerProfileRepository {
	return &DefaultSellerProfileRepository{db: db}
}

func (r *DefaultSellerProfileRepository) CreateSellerProfile(profile *domain.SellerProfile) error {
	profileModel := mappers.ToGORMSellerProfile(profile)
	return r.db.Create(&profileModel).Error
}

func (r *DefaultSellerProfileRepository) GetSellerProfileByID(sellerID string) (*domain.SellerProfile, error) {
	var profileModel models.SellerProfileModel
	if err := r.db.Model(&models.SellerProfileModel{}).Where("id = ?", sellerID).First(&profileModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSellerNotFound
		}
		return nil, err
	}

	return mappers.ToDomainSellerProfile(&profileModel), nil
}
