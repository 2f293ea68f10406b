package models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the session identity carried by the auth token. Accounts are
// fixed (admin, user1); there is no self-service registration.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
