package paymentdto

type WebhookInput struct {
	Provider    string
	ExternalRef string
	Succeeded   bool
}

type InitiatePaymentInput struct {
	OrderID  string
	BuyerID  string
	Provider string
	ExternalRef string
	Amount   float64
	Currency string
}
