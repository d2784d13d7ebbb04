package domain

import "time"

type FulfillmentStatus string

const (
	FulfillmentPacked    FulfillmentStatus = "PACKED"
	FulfillmentShipped   FulfillmentStatus = "SHIPPED"
	FulfillmentDelivered FulfillmentStatus = "DELIVERED"
	FulfillmentIssue     FulfillmentStatus = "ISSUE"
)

type PayoutStatus string

const (
	PayoutPending PayoutStatus = "PENDING"
	PayoutPaidOut PayoutStatus = "PAID_OUT"
)

type OrderItem struct {
	ID                string
	OrderID           string
	SellerID          string
	BuyerID           string
	ProductID         string
	Quantity          int32
	UnitPrice         float64
	GrossAmount       float64
	FeeAmount         float64
	NetAmount         float64
	Currency          string
	FulfillmentStatus FulfillmentStatus
	PayoutStatus      PayoutStatus
	PayoutBatchID     string
	PaidOutAt         *time.Time
	Carrier           string
	TrackingCode      string
	ShippedAt         *time.Time
	DeliveredAt       *time.Time
	ProofURL          string
	Note              string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SellerPayoutTotal - агрегат по продавцу внутри одного payout-батча
type SellerPayoutTotal struct {
	SellerID string
	Currency string
	ItemsCount int64
	NetTotal float64
}

type ShipmentUpdate struct {
	Status       FulfillmentStatus
	Carrier      *string
	TrackingCode *string
	ProofURL     *string
	Note         *string
	ShippedAt    *time.Time
	DeliveredAt  *time.Time
}

type OrderItemRepository interface {
	CreateOrderItem(item *OrderItem) error
	GetOrderItemByID(itemID string) (*OrderItem, error)
	UpdateShipment(itemID string, update ShipmentUpdate) error
	UpdateFulfillmentStatus(itemID string, status FulfillmentStatus) error
	MarkPaidOut(itemIDs []string, batchID string, paidOutAt time.Time) error
	GetItemsByBatchID(batchID string) ([]*OrderItem, error)
	GetPaidOutItemsBySellerID(sellerID string) ([]*OrderItem, error)
	GetItemsBySellerID(sellerID string, page, limit int64) ([]*OrderItem, int64, error)
}
