package domain

// Role scopes what a back-office user may see.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDelivery Role = "delivery"
)

// AdminUser is a back-office credential. Credentials live in a static list
// and are compared in plain text; there is no real account system.
type AdminUser struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}

// Identity is the logged-in back-office user, as persisted to the session
// slot. It never carries the password.
type Identity struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
