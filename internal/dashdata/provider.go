package dashdata

import (
	"context"
	"errors"
)

var ErrNoData = errors.New("dashdata: no data")

// Record is one row of dashboard data, already tenant-filtered.
type Record map[string]any

// Provider is the boundary to the data-fetch layer (warehouse, CSV loaders).
// Implementations take the tenant id from validated claims, never from the
// request, so a provider cannot be asked for another tenant's rows.
type Provider interface {
	// Load returns the records for one dashboard scoped to one tenant, or
	// ErrNoData when the dashboard has no rows for that tenant.
	Load(ctx context.Context, tenantID, slug string) ([]Record, error)
}
