package mappers

import (
	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/models"
)

func ToDomainOrderItem(model *models.OrderItemModel) *domain.OrderItem {
	return &domain.OrderItem{
		ID: model.ID,
		OrderID: model.OrderID,
		SellerID: model.SellerID,
		BuyerID: model.BuyerID,
		ProductID: model.ProductID,
		Quantity: model.Quantity,
		UnitPrice: model.UnitPrice,
		GrossAmount: model.GrossAmount,
		FeeAmount: model.FeeAmount,
		NetAmount: model.NetAmount,
		Currency: model.Currency,
		FulfillmentStatus: model.FulfillmentStatus,
		PayoutStatus: model.PayoutStatus,
		PayoutBatchID: model.PayoutBatchID,
		PaidOutAt: model.PaidOutAt,
		Carrier: model.Carrier,
		TrackingCode: model.TrackingCode,
		ShippedAt: model.ShippedAt,
		DeliveredAt: model.DeliveredAt,
		ProofURL: model.ProofURL,
		Note: model.Note,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMOrderItem(item *domain.OrderItem) *models.OrderItemModel {
	return &models.OrderItemModel{
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
		FulfillmentStatus: item.FulfillmentStatus,
		PayoutStatus: item.PayoutStatus,
		PayoutBatchID: item.PayoutBatchID,
		PaidOutAt: item.PaidOutAt,
		Carrier: item.Carrier,
		TrackingCode: item.TrackingCode,
		ShippedAt: item.ShippedAt,
		DeliveredAt: item.DeliveredAt,
		ProofURL: item.ProofURL,
		Note: item.Note,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
