package domain

import "time"

// Tenant roles, ordered from most to least privileged.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleViewer = "viewer"
)

// ValidRole reports whether role is a known tenant role.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleMember, RoleViewer:
		return true
	}
	return false
}

// Membership links a user to a tenant with a role. A user may hold
// memberships in several tenants; at most one is flagged default.
type Membership struct {
	ID        string
	UserID    string
	TenantID  string
	Role      string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
