package mappers

import (
	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/models"
)

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	return &domain.Product{
		ID: model.ID,
		SellerID: model.SellerID,
		Title: model.Title,
		Category: model.Category,
		Price: model.Price,
		Currency: model.Currency,
		Stock: model.Stock,
		ViewCount: model.ViewCount,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMProduct(product *domain.Product) *models.ProductModel {
	return &models.ProductModel{
		ID: product.ID,
		SellerID: product.SellerID,
		Title: product.Title,
		Category: product.Category,
		Price: product.Price,
		Currency: product.Currency,
		Stock: product.Stock,
		ViewCount: product.ViewCount,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

func ToDomainSellerProfile(model *models.SellerProfileModel) *domain.SellerProfile {
	return &domain.SellerProfile{
		ID: model.ID,
		DisplayName: model.DisplayName,
		Rating: model.Rating,
		PayoutCurrency: model.PayoutCurrency,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMSellerProfile(profile *domain.SellerProfile) *models.SellerProfileModel {
	return &models.SellerProfileModel{
		ID: profile.ID,
		DisplayName: profile.DisplayName,
		Rating: profile.Rating,
		PayoutCurrency: profile.PayoutCurrency,
		CreatedAt: profile.CreatedAt,
	}
}
