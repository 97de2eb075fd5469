package identity

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// PostgresRepo reads users, tenants and user_tenants via database/sql with the
// pgx stdlib driver.
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

func (r *PostgresRepo) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, email, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&u.UserID, &u.Email, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("identity: get user by email: %w", err)
	}
	return u, nil
}

func (r *PostgresRepo) GetUserByID(ctx context.Context, userID string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, email, created_at FROM users WHERE user_id = $1`,
		userID,
	).Scan(&u.UserID, &u.Email, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("identity: get user by id: %w", err)
	}
	return u, nil
}

func (r *PostgresRepo) ListTenantIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tenant_id FROM user_tenants WHERE user_id = $1 ORDER BY tenant_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("identity: list tenant ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("identity: scan tenant id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PostgresRepo) ListMemberships(ctx context.Context, userID string, tenantIDs []string) ([]Membership, error) {
	if len(tenantIDs) == 0 {
		return []Membership{}, nil
	}

	// $1 is user_id; tenant ids start at $2.
	placeholders := make([]string, len(tenantIDs))
	args := make([]any, 0, len(tenantIDs)+1)
	args = append(args, userID)
	for i, id := range tenantIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, id)
	}

	query := fmt.Sprintf(`
		SELECT t.id, t.name, t.slug, ut.role, t.config_json
		FROM tenants t
		JOIN user_tenants ut ON t.id = ut.tenant_id
		WHERE ut.user_id = $1
			AND t.id IN (%s)
			AND t.is_active
		ORDER BY t.name ASC`, strings.Join(placeholders, ","))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("identity: list memberships: %w", err)
	}
	defer rows.Close()

	out := make([]Membership, 0)
	for rows.Next() {
		var m Membership
		var rawConfig sql.NullString
		if err := rows.Scan(&m.TenantID, &m.Name, &m.Slug, &m.Role, &rawConfig); err != nil {
			return nil, fmt.Errorf("identity: scan membership: %w", err)
		}
		m.Config = parseConfig(rawConfig, m.TenantID)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetRole(ctx context.Context, userID, tenantID string) (string, error) {
	var role string
	err := r.db.QueryRowContext(ctx,
		`SELECT role FROM user_tenants WHERE user_id = $1 AND tenant_id = $2`,
		userID, tenantID,
	).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("identity: get role: %w", err)
	}
	return role, nil
}

// parseConfig tolerates malformed stored config rather than failing the read.
func parseConfig(raw sql.NullString, tenantID string) map[string]any {
	cfg := map[string]any{}
	if !raw.Valid || raw.String == "" {
		return cfg
	}
	if err := json.Unmarshal([]byte(raw.String), &cfg); err != nil {
		slog.Warn("invalid config_json for tenant", "tenant_id", tenantID)
		return map[string]any{}
	}
	return cfg
}
