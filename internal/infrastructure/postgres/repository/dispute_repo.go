package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/mappers"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDisputeRepository struct {
	db *gorm.DB
}

func NewDefaultDisputeRepository(db *gorm.DB) *DefaultDisputeRepository {
	return &DefaultDisputeRepository{db: db}
}

func (r *DefaultDisputeRepository) CreateDispute(dispute *domain.Dispute) error {
	disputeModel := mappers.ToGORMDispute(dispute)
	if err := r.db.Create(&disputeModel).Error; err != nil {
		return err
	}
	dispute.ID = disputeModel.ID
	return nil
}

func (r *DefaultDisputeRepository) GetDisputeByID(disputeID string) (*domain.Dispute, error) {
	var disputeModel models.DisputeModel
	if err := r.db.Model(&models.DisputeModel{}).Where("id = ?", disputeID).First(&disputeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, err
	}

	return mappers.ToDomainDispute(&disputeModel), nil
}

func (r *DefaultDisputeRepository) GetDisputeByOrderItemID(orderItemID string) (*domain.Dispute, error) {
	var disputeModel models.DisputeModel
	if err := r.db.Model(&models.DisputeModel{}).Where("order_item_id = ?", orderItemID).First(&disputeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, err
	}

	return mappers.ToDomainDispute(&disputeModel), nil
}

// UpdateDisputeResolution не проверяет текущий статус: повторный resolve молча
// перезаписывает отметки и заметку
func (r *DefaultDisputeRepository) UpdateDisputeResolution(disputeID string, status domain.DisputeStatus, note, resolvedByID string, resolvedAt time.Time) error {
	return r.db.Model(&models.DisputeModel{ID: disputeID}).
		Updates(map[string]interface{}{
			"status":          string(status),
			"resolution_note": note,
			"resolved_by_id":  resolvedByID,
			"resolved_at":     resolvedAt,
		}).Error
}

func (r *DefaultDisputeRepository) GetDisputes(filter domain.GetDisputesFilter) ([]*domain.Dispute, int64, error) {
    query := r.db.Model(&models.DisputeModel{}).
        Joins("JOIN order_item_models ON order_item_models.id = dispute_models.order_item_id")

    if filter.DisputeID != nil {
        query = query.Where("dispute_models.id = ?", *filter.DisputeID)
    }
    if filter.OrderItemID != nil {
        query = query.Where("dispute_models.order_item_id = ?", *filter.OrderItemID)
    }
    if filter.BuyerID != nil {
        query = query.Where("dispute_models.buyer_id = ?", *filter.BuyerID)
    }
    if filter.SellerID != nil {
        query = query.Where("order_item_models.seller_id = ?", *filter.SellerID)
    }
    if filter.Status != nil {
        query = query.Where("dispute_models.status = ?", *filter.Status)
    }

    var total int64
    if err := query.Count(&total).Error; err != nil {
        return nil, 0, fmt.Errorf("count failed: %w", err)
    }

    offset := (filter.Page - 1) * filter.Limit
    query = query.Offset(offset).Limit(filter.Limit)

    var disputeModels []models.DisputeModel
    if err := query.
        Order("dispute_models.created_at DESC").
        Find(&disputeModels).Error; err != nil {
        return nil, 0, fmt.Errorf("failed to find dispute models: %w", err)
    }

    disputes := make([]*domain.Dispute, len(disputeModels))
    for i, disputeModel := range disputeModels {
        disputes[i] = mappers.ToDomainDispute(&disputeModel)
    }

    return disputes, total, nil
}

func (r *DefaultDisputeRepository) CountDisputesByStatus(status domain.DisputeStatus) (int64, error) {
	var total int64
	if err := r.db.Model(&models.DisputeModel{}).
		Where("status = ?", string(status)).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
