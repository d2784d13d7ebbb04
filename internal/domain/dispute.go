package domain

import "time"

type DisputeStatus string

const (
	DisputeOpen             DisputeStatus = "OPEN"
	DisputeSellerResponded  DisputeStatus = "SELLER_RESPONDED"
	DisputeRedelivered      DisputeStatus = "RESOLVED_REDELIVERED"
	DisputeBuyerCompensated DisputeStatus = "RESOLVED_BUYER_COMPENSATED"
	DisputeRejected         DisputeStatus = "REJECTED"
)

type DisputeReason string

const (
	ReasonNotDelivered DisputeReason = "NOT_DELIVERED"
	ReasonDamaged      DisputeReason = "DAMAGED"
	ReasonCounterfeit  DisputeReason = "COUNTERFEIT"
	ReasonWrongItem    DisputeReason = "WRONG_ITEM"
	ReasonOther        DisputeReason = "OTHER"
)

// IsTerminal - диспут закрыт и не может быть переоткрыт
func (s DisputeStatus) IsTerminal() bool {
	switch s {
	case DisputeRedelivered, DisputeBuyerCompensated, DisputeRejected:
		return true
	}
	return false
}

type Dispute struct {
	ID             string
	OrderItemID    string
	BuyerID        string
	Reason         DisputeReason
	Description    string
	PhotoProofURL  string
	Status         DisputeStatus
	ResolutionNote string
	ResolvedByID   string
	ResolvedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type GetDisputesFilter struct {
	DisputeID   *string
	OrderItemID *string
	BuyerID     *string
	SellerID    *string
	Status      *string
	Page        int
	Limit       int
}

type DisputeRepository interface {
	CreateDispute(dispute *Dispute) error
	GetDisputeByID(disputeID string) (*Dispute, error)
	GetDisputeByOrderItemID(orderItemID string) (*Dispute, error)
	UpdateDisputeResolution(disputeID string, status DisputeStatus, note, resolvedByID string, resolvedAt time.Time) error
	GetDisputes(filter GetDisputesFilter) ([]*Dispute, int64, error)
	CountDisputesByStatus(status DisputeStatus) (int64, error)
}
