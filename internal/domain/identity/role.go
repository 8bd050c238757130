package identity

// Role is a coarse authorization role
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// ParseRoles converts stored role names, skipping unknown values
func ParseRoles(names []string) []Role {
	roles := make([]Role, 0, len(names))
	for _, n := range names {
		if r := Role(n); r.IsValid() {
			roles = append(roles, r)
		}
	}
	return roles
}
