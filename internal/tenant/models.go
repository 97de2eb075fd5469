package tenant

import "time"

// Tenant is the metadata record for one tenant, consumed by the dashboard
// shells after the access guard has passed.
type Tenant struct {
	ID        string         `json:"id" db:"id"`
	Name      string         `json:"name" db:"name"`
	Slug      string         `json:"slug" db:"slug"`
	IsActive  bool           `json:"is_active" db:"is_active"`
	Config    map[string]any `json:"config" db:"config_json"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

// Dashboard is one dashboard assignment entry for a tenant.
type Dashboard struct {
	Slug        string         `json:"slug" db:"slug"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Config      map[string]any `json:"config" db:"config_json"`
}
