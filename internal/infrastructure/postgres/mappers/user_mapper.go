package mappers

import (
	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/models"
)

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID: model.ID,
		Email: model.Email,
		Phone: model.Phone,
		Role: domain.UserRole(model.Role),
		EmailEnabled: model.EmailEnabled,
		SMSEnabled: model.SMSEnabled,
		PushEnabled: model.PushEnabled,
		Timezone: model.Timezone,
		QuietHoursStart: model.QuietHoursStart,
		QuietHoursEnd: model.QuietHoursEnd,
	}
}

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID: user.ID,
		Email: user.Email,
		Phone: user.Phone,
		Role: string(user.Role),
		EmailEnabled: user.EmailEnabled,
		SMSEnabled: user.SMSEnabled,
		PushEnabled: user.PushEnabled,
		Timezone: user.Timezone,
		QuietHoursStart: user.QuietHoursStart,
		QuietHoursEnd: user.QuietHoursEnd,
	}
}
