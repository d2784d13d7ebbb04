package repository

import (
	"time"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/mappers"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultNotificationRepository struct {
	db *gorm.DB
}

func NewDefaultNotificationRepository(db *gorm.DB) *DefaultNotificationRepository {
	return &DefaultNotificationRepository{db: db}
}

func (r *DefaultNotificationRepository) CreateNotification(notification *domain.Notification) error {
	notificationModel := mappers.ToGORMNotification(notification)
	if err := r.db.Create(&notificationModel).Error; err != nil {
		return err
	}
	notification.ID = notificationModel.ID
	return nil
}

func (r *DefaultNotificationRepository) GetNotificationsByUserID(userID string, page, limit int64) ([]*domain.Notification, int64, error) {
	query := r.db.Model(&models.NotificationModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	var notificationModels []models.NotificationModel
	if err := query.
		Order("created_at DESC").
		Offset(int(offset)).Limit(int(limit)).
		Find(&notificationModels).Error; err != nil {
		return nil, 0, err
	}

	notifications := make([]*domain.Notification, len(notificationModels))
	for i, notificationModel := range notificationModels {
		notifications[i] = mappers.ToDomainNotification(&notificationModel)
	}

	return notifications, total, nil
}

func (r *DefaultNotificationRepository) MarkNotificationRead(notificationID string, readAt time.Time) error {
	return r.db.Model(&models.NotificationModel{ID: notificationID}).Update("read_at", readAt).Error
}
