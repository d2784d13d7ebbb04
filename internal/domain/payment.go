package domain

import "time"

type PaymentStatus string

const (
	PaymentInitiated PaymentStatus = "INITIATED"
	PaymentSucceeded PaymentStatus = "SUCCEEDED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// IsTerminal - повторная доставка вебхука по завершенному платежу является no-op
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentSucceeded || s == PaymentFailed
}

type Payment struct {
	ID          string
	OrderID     string
	BuyerID     string
	Provider    string
	ExternalRef string
	Amount      float64
	Currency    string
	Status      PaymentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PaymentRepository interface {
	CreatePayment(payment *Payment) error
	GetPaymentByExternalRef(provider, externalRef string) (*Payment, error)
	UpdatePaymentStatus(paymentID string, status PaymentStatus) error
}
