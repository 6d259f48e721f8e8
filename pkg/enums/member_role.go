package enums

import "fmt"

// MemberRole describes the access level attached to a user's role row.
type MemberRole string

const (
	MemberRoleMember     MemberRole = "member"
	MemberRoleAdmin      MemberRole = "admin"
	MemberRoleSuperadmin MemberRole = "superadmin"
)

var validMemberRoles = []MemberRole{
	MemberRoleMember,
	MemberRoleAdmin,
	MemberRoleSuperadmin,
}

// IsValid reports whether the value matches the canonical member role enum.
func (m MemberRole) IsValid() bool {
	for _, candidate := range validMemberRoles {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMemberRole converts the raw string to MemberRole.
func ParseMemberRole(value string) (MemberRole, error) {
	for _, candidate := range validMemberRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid member role %q", value)
}
