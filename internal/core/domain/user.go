package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a registered customer. Role is empty for regular customers and
// "admin" once promoted.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo,omitempty"`
	Role  string `json:"role,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
