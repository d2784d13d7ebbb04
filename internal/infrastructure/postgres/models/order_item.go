package models

import (
	"time"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
)

type OrderItemModel struct {
	ID 			  		string  					`gorm:"primaryKey;type:uuid"`
	OrderID 	  		string						`gorm:"type:uuid;index:idx_order"`
	SellerID 	  		string						`gorm:"index:idx_seller_payout"`
	BuyerID 	  		string						`gorm:"index"`
	ProductID 	  		string						`gorm:"type:uuid"`
	Quantity 	  		int32
	UnitPrice 	  		float64
	GrossAmount   		float64
	FeeAmount 	  		float64
	NetAmount 	  		float64
	Currency 	  		string
	FulfillmentStatus 	domain.FulfillmentStatus	`gorm:"index:idx_fulfillment_status"`
	PayoutStatus 		domain.PayoutStatus			`gorm:"index:idx_seller_payout"`
	PayoutBatchID 		string						`gorm:"index"`
	PaidOutAt 	  		*time.Time
	Carrier 	  		string
	TrackingCode  		string
	ShippedAt 	  		*time.Time
	DeliveredAt   		*time.Time
	ProofURL 	  		string
	Note 		  		string
	CreatedAt 	  		time.Time					`gorm:"index:idx_created_at"`
	UpdatedAt 	  		time.Time
}
