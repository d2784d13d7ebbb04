package fulfillmentdto

type MarkShippedInput struct {
	OrderItemID  string
	SellerID     string
	Carrier      *string
	TrackingCode *string
	Note         *string
}

type MarkDeliveredInput struct {
	OrderItemID string
	SellerID    string
	ProofURL    *string
	Note        *string
}

type MarkIssueInput struct {
	OrderItemID string
	SellerID    string
	Note        string
}
