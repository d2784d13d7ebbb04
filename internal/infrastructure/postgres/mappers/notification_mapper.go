package mappers

import (
	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/models"
)

func ToDomainNotification(model *models.NotificationModel) *domain.Notification {
	return &domain.Notification{
		ID: model.ID,
		UserID: model.UserID,
		Type: domain.NotificationType(model.Type),
		Title: model.Title,
		Body: model.Body,
		DataJSON: model.DataJSON,
		ReadAt: model.ReadAt,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMNotification(notification *domain.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID: notification.ID,
		UserID: notification.UserID,
		Type: string(notification.Type),
		Title: notification.Title,
		Body: notification.Body,
		DataJSON: notification.DataJSON,
		ReadAt: notification.ReadAt,
		CreatedAt: notification.CreatedAt,
	}
}
