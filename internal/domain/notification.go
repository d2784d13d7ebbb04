package domain

import "time"

type NotificationType string

const (
	NotificationShipped         NotificationType = "SHIPPED"
	NotificationDelivered       NotificationType = "DELIVERED"
	NotificationIssue           NotificationType = "ISSUE"
	NotificationDisputeOpened   NotificationType = "DISPUTE_OPENED"
	NotificationDisputeResolved NotificationType = "DISPUTE_RESOLVED"
	NotificationPaymentSucceeded NotificationType = "PAYMENT_SUCCEEDED"
	NotificationPaymentFailed    NotificationType = "PAYMENT_FAILED"
	NotificationPayoutReleased   NotificationType = "PAYOUT_RELEASED"
)

type Channel string

const (
	ChannelEmail Channel = "EMAIL"
	ChannelSMS   Channel = "SMS"
	ChannelPush  Channel = "PUSH"
)

type Notification struct {
	ID        string
	UserID    string
	Type      NotificationType
	Title     string
	Body      string
	DataJSON  string
	ReadAt    *time.Time
	CreatedAt time.Time
}

type NotificationRepository interface {
	CreateNotification(notification *Notification) error
	GetNotificationsByUserID(userID string, page, limit int64) ([]*Notification, int64, error)
	MarkNotificationRead(notificationID string, readAt time.Time) error
}
