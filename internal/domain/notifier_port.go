package domain

import "context"

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type SMSSender interface {
	SendSMS(ctx context.Context, phone, text string) error
}

type PushSender interface {
	SendPush(ctx context.Context, userID, title, body string) error
}
