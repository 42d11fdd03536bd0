package entity

import "fmt"

// Role is the closed set of account roles. Role dispatch must always switch
// over these constants, never compare raw strings.
type Role string

const (
	RoleStudent    Role = "student"
	RoleParent     Role = "parent"
	RoleTeacher    Role = "teacher"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// AllRoles in the order they are seeded and listed.
func AllRoles() []Role {
	return []Role{RoleStudent, RoleParent, RoleTeacher, RoleAdmin, RoleSuperAdmin}
}

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleParent, RoleTeacher, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// Collection is the per-role mirror collection a profile is duplicated into,
// or "" for roles without one (parent, superadmin).
func (r Role) Collection() string {
	switch r {
	case RoleAdmin:
		return "admins"
	case RoleTeacher:
		return "teachers"
	case RoleStudent:
		return "students"
	case RoleParent, RoleSuperAdmin:
		return ""
	}
	return ""
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
