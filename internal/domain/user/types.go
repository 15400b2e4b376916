package user

type Role string

const (
	RoleUser     Role = "user"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleEmployee, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsSuperUser reports whether the role is granted broad read access (employee or admin).
func (r Role) IsSuperUser() bool {
	return r == RoleEmployee || r == RoleAdmin
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
