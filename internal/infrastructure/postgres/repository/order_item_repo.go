package repository

import (
	"errors"
	"time"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/mappers"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderItemRepository struct {
	db *gorm.DB
}

func NewDefaultOrderItemRepository(db *gorm.DB) *DefaultOrderItemRepository {
	return &DefaultOrderItemRepository{db: db}
}

func (r *DefaultOrderItemRepository) CreateOrderItem(item *domain.OrderItem) error {
	itemModel := mappers.ToGORMOrderItem(item)
	if err := r.db.Create(&itemModel).Error; err != nil {
		return err
	}
	item.ID = itemModel.ID
	return nil
}

func (r *DefaultOrderItemRepository) GetOrderItemByID(itemID string) (*domain.OrderItem, error) {
	var itemModel models.OrderItemModel
	if err := r.db.Model(&models.OrderItemModel{}).Where("id = ?", itemID).First(&itemModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderItemNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrderItem(&itemModel), nil
}

// UpdateShipment перезаписывает статус и shipping-метаданные без проверки предыдущего статуса
func (r *DefaultOrderItemRepository) UpdateShipment(itemID string, update domain.ShipmentUpdate) error {
	values := map[string]interface{}{
		"fulfillment_status": string(update.Status),
	}
	if update.Carrier != nil {
		values["carrier"] = *update.Carrier
	}
	if update.TrackingCode != nil {
		values["tracking_code"] = *update.TrackingCode
	}
	if update.ProofURL != nil {
		values["proof_url"] = *update.ProofURL
	}
	if update.Note != nil {
		values["note"] = *update.Note
	}
	if update.ShippedAt != nil {
		values["shipped_at"] = *update.ShippedAt
	}
	if update.DeliveredAt != nil {
		values["delivered_at"] = *update.DeliveredAt
	}

	return r.db.Model(&models.OrderItemModel{ID: itemID}).Updates(values).Error
}

func (r *DefaultOrderItemRepository) UpdateFulfillmentStatus(itemID string, status domain.FulfillmentStatus) error {
	return r.db.Model(&models.OrderItemModel{ID: itemID}).Update("fulfillment_status", status).Error
}

func (r *DefaultOrderItemRepository) MarkPaidOut(itemIDs []string, batchID string, paidOutAt time.Time) error {
	return r.db.Model(&models.OrderItemModel{}).
		Where("id IN ?", itemIDs).
		Updates(map[string]interface{}{
			"payout_status":   string(domain.PayoutPaidOut),
			"payout_batch_id": batchID,
			"paid_out_at":     paidOutAt,
		}).Error
}

func (r *DefaultOrderItemRepository) GetItemsByBatchID(batchID string) ([]*domain.OrderItem, error) {
	var itemModels []models.OrderItemModel
	if err := r.db.Model(&models.OrderItemModel{}).
		Where("payout_batch_id = ?", batchID).
		Find(&itemModels).Error; err != nil {
			return nil, err
		}
	items := make([]*domain.OrderItem, len(itemModels))
	for i, itemModel := range itemModels {
		items[i] = mappers.ToDomainOrderItem(&itemModel)
	}

	return items, nil
}

func (r *DefaultOrderItemRepository) GetPaidOutItemsBySellerID(sellerID string) ([]*domain.OrderItem, error) {
	var itemModels []models.OrderItemModel
	if err := r.db.Model(&models.OrderItemModel{}).
		Where("seller_id = ?", sellerID).
		Where("payout_status = ?", string(domain.PayoutPaidOut)).
		Order("paid_out_at DESC").
		Find(&itemModels).Error; err != nil {
			return nil, err
		}
	items := make([]*domain.OrderItem, len(itemModels))
	for i, itemModel := range itemModels {
		items[i] = mappers.ToDomainOrderItem(&itemModel)
	}

	return items, nil
}

func (r *DefaultOrderItemRepository) GetItemsBySellerID(sellerID string, page, limit int64) ([]*domain.OrderItem, int64, error) {
	query := r.db.Model(&models.OrderItemModel{}).Where("seller_id = ?", sellerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	var itemModels []models.OrderItemModel
	if err := query.
		Order("created_at DESC").
		Offset(int(offset)).Limit(int(limit)).
		Find(&itemModels).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*domain.OrderItem, len(itemModels))
	for i, itemModel := range itemModels {
		items[i] = mappers.ToDomainOrderItem(&itemModel)
	}

	return items, total, nil
}
