package tenant

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("tenant: not found")

// Repository is the tenant-metadata lookup contract.
//
// Callers invoke these only after the tenant access guard has passed; the
// repository itself does not re-check authorization.
type Repository interface {
	// GetTenant returns the tenant record or ErrNotFound.
	GetTenant(ctx context.Context, tenantID string) (Tenant, error)
	// ListDashboards returns the tenant's assigned dashboards sorted by title
	// ascending. An empty list is not an error.
	ListDashboards(ctx context.Context, tenantID string) ([]Dashboard, error)
	// IsDashboardAssigned reports whether slug belongs to tenantID. Data
	// endpoints use it to resolve a slug to its owning tenant before the
	// access check.
	IsDashboardAssigned(ctx context.Context, slug, tenantID string) (bool, error)
}
