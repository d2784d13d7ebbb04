package disputedto

type OpenDisputeInput struct {
	OrderItemID   string
	BuyerID       string
	Reason        string
	Description   string
	PhotoProofURL string
}

type ResolveDisputeInput struct {
	DisputeID      string
	ActorID        string
	Status         string
	ResolutionNote string
}
