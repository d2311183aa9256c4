package entity

import "strings"

// Role 用户角色，只允许 ADMIN 和 USER 两个取值。
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Roles lists every recognised role in display order.
var Roles = []Role{RoleAdmin, RoleUser}

// ParseRole normalises external input into a Role. Matching is case-insensitive
// and surrounding whitespace is ignored.
func ParseRole(value string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(value))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	default:
		return "", false
	}
}

// IsValid reports whether r is one of the enumerated roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

func (r Role) String() string {
	return string(r)
}
