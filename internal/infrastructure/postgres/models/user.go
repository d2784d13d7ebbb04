package models

type UserModel struct {
	ID 				string `gorm:"primaryKey"`
	Email 			string
	Phone 			string
	Role 			string
	EmailEnabled 	bool
	SMSEnabled 		bool
	PushEnabled 	bool
	Timezone 		string
	QuietHoursStart string
	QuietHoursEnd 	string
}
