package tenant

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory tenant store for tests and local development.

type MemoryRepo struct {
	mu sync.Mutex

	Tenants map[string]Tenant
	// Dashboards maps tenant_id to assigned dashboards.
	Dashboards map[string][]Dashboard
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		Tenants:    map[string]Tenant{},
		Dashboards: map[string][]Dashboard{},
	}
}

func (r *MemoryRepo) GetTenant(ctx context.Context, tenantID string) (Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.Tenants[tenantID]
	if !ok {
		return Tenant{}, ErrNotFound
	}
	return t, nil
}

func (r *MemoryRepo) ListDashboards(ctx context.Context, tenantID string) ([]Dashboard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Dashboard, len(r.Dashboards[tenantID]))
	copy(out, r.Dashboards[tenantID])
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *MemoryRepo) IsDashboardAssigned(ctx context.Context, slug, tenantID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.Dashboards[tenantID] {
		if d.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}
