package audit

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresRepo appends audit events via database/sql with the pgx stdlib
// driver. The table carries an INSERT-only policy; there is no read path here.
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

func (r *PostgresRepo) Append(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO auth_audit_events (id, type, actor_user_id, email, tenant_id, role, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, string(e.Type), e.ActorUserID, e.Email, e.TenantID, e.Role, e.Message, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("audit: append: %w", err)
	}
	return nil
}
