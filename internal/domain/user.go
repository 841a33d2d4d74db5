package domain

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleShopkeeper Role = "shopkeeper"
	RoleRenter     Role = "renter"
)

// ValidRegistrationRole reports whether a role may be chosen at signup.
// Admin accounts are seeded only.
func ValidRegistrationRole(r Role) bool {
	return r == RoleShopkeeper || r == RoleRenter
}

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Password     string `json:"-"` // stored as plain text, compared as stored
	Role         Role   `json:"role"`
	ProfileImage string `json:"profile_image,omitempty"`
	CreatedOn    string `json:"created_on"`
}
