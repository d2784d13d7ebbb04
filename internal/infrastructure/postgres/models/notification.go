package models

import (
	"time"
)

type NotificationModel struct {
	ID 			string `gorm:"primaryKey"`
	UserID 		string `gorm:"index:idx_user_created"`
	Type 		string
	Title 		string
	Body 		string
	DataJSON 	string `gorm:"type:jsonb"`
	ReadAt 		*time.Time
	CreatedAt 	time.Time `gorm:"index:idx_user_created"`
}
