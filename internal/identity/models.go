package identity

import "time"

// Role names carried in tenant tokens. The PoC records roles but makes no
// authorization decisions from them.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

type User struct {
	UserID    string    `json:"user_id" db:"user_id"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Membership is a user's relationship to one tenant, joined with the tenant's
// display metadata for the tenant-selection UI.
type Membership struct {
	TenantID string         `json:"tenant_id" db:"tenant_id"`
	Name     string         `json:"name" db:"name"`
	Slug     string         `json:"slug" db:"slug"`
	Role     string         `json:"role" db:"role"`
	Config   map[string]any `json:"config" db:"config_json"`
}
