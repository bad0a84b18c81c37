package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin indicates a super administrator role.
	RoleSuperAdmin Role = "superadmin"
	// RoleRestaurantPartner indicates a partner owning one or more restaurants.
	RoleRestaurantPartner Role = "restaurantpartner"
	// RoleStorePartner indicates a partner owning one or more stores.
	RoleStorePartner Role = "storepartner"

	// RoleNone marks a caller whose token is valid but who has no registry row.
	// Guards treat it as deny.
	RoleNone Role = ""
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin, RoleRestaurantPartner, RoleStorePartner:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role carries administrative write access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// IsPartner reports whether the role is scoped to owned resources.
func (r Role) IsPartner() bool {
	return r == RoleRestaurantPartner || r == RoleStorePartner
}
