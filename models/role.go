package models

// Role is the closed set of account roles. Handlers never compare raw
// strings; they go through these constants and Role.Valid.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleStoreOwner Role = "store_owner"
	RoleNormal     Role = "normal"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStoreOwner, RoleNormal:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
