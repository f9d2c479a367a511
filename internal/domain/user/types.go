package user

type Role string

const (
	RoleGuest Role = "guest"
	RoleAgent Role = "agent"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleAgent, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// NewRole treats an empty role as a plain guest account.
func NewRole(s string) (Role, error) {
	if s == "" {
		return RoleGuest, nil
	}
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
