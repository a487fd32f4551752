package models

type Role string

const (
	RoleUser     Role = "user"
	RoleReviewer Role = "reviewer"
	RoleAdmin    Role = "admin"
)

// Principal is the calling identity as asserted by the external identity
// provider's token. It is never persisted here; the workflow only reads the
// role to authorize moderation.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Moderator reports whether the principal may decide pending articles.
func (p Principal) Moderator() bool {
	return p.Role == RoleAdmin || p.Role == RoleReviewer
}
