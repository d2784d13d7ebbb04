package payoutdto

type MarkPaidOutInput struct {
	OrderItemIDs []string
	BatchID      string
}
