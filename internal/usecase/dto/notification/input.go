package notificationdto

import "github.com/sokonova/sokonova-fulfillment-service/internal/domain"

type CreateNotificationInput struct {
	UserID   string
	Type     domain.NotificationType
	Title    string
	Body     string
	Data     map[string]string
	Channels []domain.Channel
}
