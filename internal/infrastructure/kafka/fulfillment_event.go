package kafka

type FulfillmentEvent struct {
	OrderItemID string	`json:"order_item_id"`
	OrderID 	string	`json:"order_id"`
	SellerID 	string	`json:"seller_id"`
	BuyerID 	string	`json:"buyer_id"`
	Status 		string	`json:"status"`
	Carrier 	string	`json:"carrier,omitempty"`
	TrackingCode string	`json:"tracking_code,omitempty"`
}
