package user

import "strings"

type Role string

const (
	RoleGuest    Role = "GUEST"
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
)

var roleHierarchy = map[Role]int{
	RoleGuest:    1,
	RoleEmployee: 2,
	RoleManager:  3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleHierarchy[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles never qualify.
func (r Role) AtLeast(min Role) bool {
	level, ok := roleHierarchy[r]
	minLevel, minOK := roleHierarchy[min]
	return ok && minOK && level >= minLevel
}

// NewRole accepts the upstream spelling in any case ("manager", "MANAGER").
func NewRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
