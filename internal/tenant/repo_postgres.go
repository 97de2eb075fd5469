package tenant

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// PostgresRepo reads tenants, dashboards and tenant_dashboards via
// database/sql with the pgx stdlib driver.
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

func (r *PostgresRepo) GetTenant(ctx context.Context, tenantID string) (Tenant, error) {
	var t Tenant
	var rawConfig sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, slug, is_active, config_json, created_at FROM tenants WHERE id = $1`,
		tenantID,
	).Scan(&t.ID, &t.Name, &t.Slug, &t.IsActive, &rawConfig, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Tenant{}, ErrNotFound
	}
	if err != nil {
		return Tenant{}, fmt.Errorf("tenant: get tenant: %w", err)
	}
	t.Config = parseConfig(rawConfig, tenantID)
	return t, nil
}

func (r *PostgresRepo) ListDashboards(ctx context.Context, tenantID string) ([]Dashboard, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT d.slug, d.title, d.description, d.config_json
		FROM dashboards d
		JOIN tenant_dashboards td ON d.slug = td.slug
		WHERE td.tenant_id = $1
		ORDER BY d.title ASC`,
		tenantID,
	)
	if err != nil {
		return nil, fmt.Errorf("tenant: list dashboards: %w", err)
	}
	defer rows.Close()

	out := make([]Dashboard, 0)
	for rows.Next() {
		var d Dashboard
		var rawConfig sql.NullString
		if err := rows.Scan(&d.Slug, &d.Title, &d.Description, &rawConfig); err != nil {
			return nil, fmt.Errorf("tenant: scan dashboard: %w", err)
		}
		d.Config = parseConfig(rawConfig, d.Slug)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) IsDashboardAssigned(ctx context.Context, slug, tenantID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM tenant_dashboards WHERE slug = $1 AND tenant_id = $2)`,
		slug, tenantID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("tenant: dashboard assignment: %w", err)
	}
	return exists, nil
}

// parseConfig tolerates malformed stored config rather than failing the read.
func parseConfig(raw sql.NullString, key string) map[string]any {
	cfg := map[string]any{}
	if !raw.Valid || raw.String == "" {
		return cfg
	}
	if err := json.Unmarshal([]byte(raw.String), &cfg); err != nil {
		slog.Warn("invalid config_json", "key", key)
		return map[string]any{}
	}
	return cfg
}
