package models

import (
	"time"
)

type ProductModel struct {
	ID 			string `gorm:"primaryKey;type:uuid"`
	SellerID 	string `gorm:"index"`
	Title 		string
	Category 	string `gorm:"index:idx_category_views"`
	Price 		float64
	Currency 	string
	Stock 		int32
	ViewCount 	int64  `gorm:"index:idx_category_views"`
	CreatedAt 	time.Time
	UpdatedAt 	time.Time
}

type SellerProfileModel struct {
	ID 				string `gorm:"primaryKey"`
	DisplayName 	string
	Rating 			float64
	PayoutCurrency 	string
	CreatedAt 		time.Time
}
