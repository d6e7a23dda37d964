package model

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// AuthContext is the caller identity handed over by the identity provider.
// It is trusted as-is; every service operation receives it explicitly.
type AuthContext struct {
	UserID         string
	OrganizationID string
	Role           string
}

func (a AuthContext) IsAdmin() bool {
	return a.Role == RoleAdmin
}
