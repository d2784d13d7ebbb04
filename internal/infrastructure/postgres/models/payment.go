package models

import (
	"time"
)

type PaymentModel struct {
	ID 			string `gorm:"primaryKey;type:uuid"`
	OrderID 	string `gorm:"type:uuid;index"`
	BuyerID 	string
	Provider 	string `gorm:"uniqueIndex:idx_provider_ref"`
	ExternalRef string `gorm:"uniqueIndex:idx_provider_ref"`
	Amount 		float64
	Currency 	string
	Status 		string `gorm:"index"`
	CreatedAt 	time.Time
	UpdatedAt 	time.Time
}
