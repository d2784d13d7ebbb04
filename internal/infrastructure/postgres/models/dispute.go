package models

import (
	"time"
)

type DisputeModel struct {
	ID 			 		string `gorm:"primaryKey"`
	OrderItemID  		string `gorm:"type:uuid;index"`
	BuyerID 	 		string `gorm:"index"`
	Reason 		 		string
	Description  		string
	PhotoProofURL 		string
	Status 		 		string `gorm:"index"`
	ResolutionNote 		string
	ResolvedByID 		string
	ResolvedAt 	 		*time.Time
	OrderItem	 		OrderItemModel `gorm:"foreignKey:OrderItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CreatedAt	 		time.Time
	UpdatedAt 	 		time.Time
}
