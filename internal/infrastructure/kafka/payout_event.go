package kafka

type PayoutEvent struct {
	BatchID 	string	`json:"batch_id"`
	SellerID 	string	`json:"seller_id"`
	ItemsCount 	int64	`json:"items_count"`
	NetTotal 	float64	`json:"net_total"`
	Currency 	string	`json:"currency"`
}
