package kafka

type DisputeEvent struct {
	DisputeID 	string	`json:"dispute_id"`
	OrderItemID string	`json:"order_item_id"`
	BuyerID 	string	`json:"buyer_id"`
	SellerID 	string	`json:"seller_id"`
	Reason 		string	`json:"reason"`
	Status 		string	`json:"status"`
	ProofUrl 	string	`json:"proof_url,omitempty"`
}
