package identity

import (
	"context"
	"testing"
)

func seededRepo() *MemoryRepo {
	r := NewMemoryRepo()
	r.Users = []User{
		{UserID: "user-1", Email: "admin@acme.com"},
		{UserID: "user-2", Email: "viewer@beta.com"},
	}
	r.Memberships["user-1"] = []Membership{
		{TenantID: "beta-uuid", Name: "Beta Industries", Slug: "beta", Role: RoleAdmin, Config: map[string]any{}},
		{TenantID: "acme-uuid", Name: "Acme Corporation", Slug: "acme", Role: RoleAdmin, Config: map[string]any{}},
	}
	r.Memberships["user-2"] = []Membership{
		{TenantID: "beta-uuid", Name: "Beta Industries", Slug: "beta", Role: RoleViewer, Config: map[string]any{}},
	}
	return r
}

func TestMemoryRepo_GetUserByEmail(t *testing.T) {
	r := seededRepo()
	u, err := r.GetUserByEmail(context.Background(), "admin@acme.com")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if u.UserID != "user-1" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if _, err := r.GetUserByEmail(context.Background(), "nobody@acme.com"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepo_ListMemberships_SortedAndFiltered(t *testing.T) {
	r := seededRepo()

	ms, err := r.ListMemberships(context.Background(), "user-1", []string{"acme-uuid", "beta-uuid"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ms) != 2 || ms[0].Name != "Acme Corporation" || ms[1].Name != "Beta Industries" {
		t.Fatalf("expected name-ascending order, got %+v", ms)
	}

	// Only tenants present in the token's membership list are visible.
	ms, err = r.ListMemberships(context.Background(), "user-1", []string{"beta-uuid"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ms) != 1 || ms[0].TenantID != "beta-uuid" {
		t.Fatalf("expected beta only, got %+v", ms)
	}

	// Inactive tenants are excluded.
	r.Inactive["beta-uuid"] = true
	ms, err = r.ListMemberships(context.Background(), "user-1", []string{"acme-uuid", "beta-uuid"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ms) != 1 || ms[0].TenantID != "acme-uuid" {
		t.Fatalf("expected acme only, got %+v", ms)
	}
}

func TestMemoryRepo_GetRole(t *testing.T) {
	r := seededRepo()
	role, err := r.GetRole(context.Background(), "user-2", "beta-uuid")
	if err != nil {
		t.Fatalf("role: %v", err)
	}
	if role != RoleViewer {
		t.Fatalf("unexpected role %q", role)
	}
	if _, err := r.GetRole(context.Background(), "user-2", "acme-uuid"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
