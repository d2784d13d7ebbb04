package mappers

import (
	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/models"
)

func ToDomainPayment(model *models.PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID: model.ID,
		OrderID: model.OrderID,
		BuyerID: model.BuyerID,
		Provider: model.Provider,
		ExternalRef: model.ExternalRef,
		Amount: model.Amount,
		Currency: model.Currency,
		Status: domain.PaymentStatus(model.Status),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMPayment(payment *domain.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID: payment.ID,
		OrderID: payment.OrderID,
		BuyerID: payment.BuyerID,
		Provider: payment.Provider,
		ExternalRef: payment.ExternalRef,
		Amount: payment.Amount,
		Currency: payment.Currency,
		Status: string(payment.Status),
		CreatedAt: payment.CreatedAt,
		UpdatedAt: payment.UpdatedAt,
	}
}
