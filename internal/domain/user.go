package domain

type UserRole string

const (
	RoleBuyer  UserRole = "BUYER"
	RoleSeller UserRole = "SELLER"
	RoleAdmin  UserRole = "ADMIN"
)

type User struct {
	ID              string
	Email           string
	Phone           string
	Role            UserRole
	EmailEnabled    bool
	SMSEnabled      bool
	PushEnabled     bool
	Timezone        string
	QuietHoursStart string
	QuietHoursEnd   string
}

type UserRepository interface {
	GetUserByID(userID string) (*User, error)
	CreateUser(user *User) error
}
