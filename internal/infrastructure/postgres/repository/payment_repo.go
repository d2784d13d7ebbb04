package repository

import (
	"errors"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/mappers"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentRepository struct {
	db *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{db: db}
}

func (r *DefaultPaymentRepository) CreatePayment(payment *domain.Payment) error {
	paymentModel := mappers.ToGORMPayment(payment)
	if err := r.db.Create(&paymentModel).Error; err != nil {
		return err
	}
	payment.ID = paymentModel.ID
	return nil
}

func (r *DefaultPaymentRepository) GetPaymentByExternalRef(provider, externalRef string) (*domain.Payment, error) {
	var paymentModel models.PaymentModel
	if err := r.db.Model(&models.PaymentModel{}).
		Where("provider = ?", provider).
		Where("external_ref = ?", externalRef).
		First(&paymentModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}

	return mappers.ToDomainPayment(&paymentModel), nil
}

func (r *DefaultPaymentRepository) UpdatePaymentStatus(paymentID string, status domain.PaymentStatus) error {
	return r.db.Model(&models.PaymentModel{ID: paymentID}).Update("status", status).Error
}
