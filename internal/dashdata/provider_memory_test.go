package dashdata

import (
	"context"
	"testing"
)

func TestMemoryProvider_TenantScopedLoad(t *testing.T) {
	p := NewMemoryProvider()
	p.Seed("acme-uuid", "risk-analysis", []Record{{"score": 0.7}, {"score": 0.2}})

	rows, err := p.Load(context.Background(), "acme-uuid", "risk-analysis")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	// Another tenant asking for the same slug gets nothing.
	if _, err := p.Load(context.Background(), "beta-uuid", "risk-analysis"); err != ErrNoData {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestMemoryProvider_UnknownSlug(t *testing.T) {
	p := NewMemoryProvider()
	if _, err := p.Load(context.Background(), "acme-uuid", "missing"); err != ErrNoData {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}
