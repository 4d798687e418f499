package models

// Role is the closed set of access levels a user can hold.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// ParseRole maps an optional role string to a Role, defaulting to RoleUser.
func ParseRole(s string) (Role, bool) {
	if s == "" {
		return RoleUser, true
	}
	r := Role(s)
	return r, r.Valid()
}
