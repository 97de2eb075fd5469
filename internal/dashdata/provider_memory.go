package dashdata

import (
	"context"
	"sync"
)

// MemoryProvider serves seeded records for tests and local development.
// Records are keyed by tenant first, so a cross-tenant read is structurally
// impossible regardless of the slug asked for.

type MemoryProvider struct {
	mu sync.Mutex
	// records[tenantID][slug]
	records map[string]map[string][]Record
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{records: map[string]map[string][]Record{}}
}

func (p *MemoryProvider) Seed(tenantID, slug string, rows []Record) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.records[tenantID] == nil {
		p.records[tenantID] = map[string][]Record{}
	}
	p.records[tenantID][slug] = rows
}

func (p *MemoryProvider) Load(ctx context.Context, tenantID, slug string) ([]Record, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	rows := p.records[tenantID][slug]
	if len(rows) == 0 {
		return nil, ErrNoData
	}
	out := make([]Record, len(rows))
	copy(out, rows)
	return out, nil
}
