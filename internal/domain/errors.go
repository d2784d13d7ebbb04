package domain

import "errors"

var (
	ErrOrderItemNotFound    = errors.New("order item not found")
	ErrDisputeNotFound      = errors.New("dispute not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrSellerNotFound       = errors.New("seller profile not found")
	ErrNotItemOwner         = errors.New("actor is not the item seller")
	ErrNotOrderBuyer        = errors.New("actor is not the order buyer")
	ErrNotSellerOrAdmin     = errors.New("actor is not the item seller or an admin")
	ErrInvalidDisputeStatus = errors.New("invalid dispute resolution status")
	ErrInvalidReason        = errors.New("invalid dispute reason")
	ErrChannelSendFailed    = errors.New("notification channel send failed")
)
