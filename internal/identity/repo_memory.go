package identity

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory identity store for tests and local development.

type MemoryRepo struct {
	mu sync.Mutex

	Users []User
	// Memberships maps user_id to tenant memberships.
	Memberships map[string][]Membership
	// Inactive holds tenant ids excluded from membership listings.
	Inactive map[string]bool
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		Memberships: map[string][]Membership{},
		Inactive:    map[string]bool{},
	}
}

func (r *MemoryRepo) GetUserByEmail(ctx context.Context, email string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *MemoryRepo) GetUserByID(ctx context.Context, userID string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.Users {
		if u.UserID == userID {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *MemoryRepo) ListTenantIDs(ctx context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0)
	for _, m := range r.Memberships[userID] {
		ids = append(ids, m.TenantID)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *MemoryRepo) ListMemberships(ctx context.Context, userID string, tenantIDs []string) ([]Membership, error) {
	allowed := make(map[string]bool, len(tenantIDs))
	for _, id := range tenantIDs {
		allowed[id] = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Membership, 0)
	for _, m := range r.Memberships[userID] {
		if !allowed[m.TenantID] || r.Inactive[m.TenantID] {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryRepo) GetRole(ctx context.Context, userID, tenantID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.Memberships[userID] {
		if m.TenantID == tenantID {
			return m.Role, nil
		}
	}
	return "", ErrNotFound
}
