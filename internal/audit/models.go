package audit

import "time"

// Event is an immutable, append-only record of an authentication or
// authorization decision.
//
// Invariants:
// - Events are never updated or deleted.
// - Recording is best-effort; auth flows must not block on audit failures.
//
// Storage recommendation (Postgres):
// - Table auth_audit_events with an INSERT-only policy.
// - Optional: partition by time for retention.

type Event struct {
	ID string `json:"id" db:"id"`

	// Type indicates which auth decision produced the record.
	Type EventType `json:"type" db:"type"`

	// ActorUserID is the subject of the token involved.
	ActorUserID string `json:"actor_user_id" db:"actor_user_id"`
	Email       string `json:"email,omitempty" db:"email"`

	// TenantID is the tenant the decision concerned, when one applies.
	// Logins are tenant-less.
	TenantID string `json:"tenant_id,omitempty" db:"tenant_id"`
	Role     string `json:"role,omitempty" db:"role"`

	// Message is a short human-readable description for internal ops.
	Message string `json:"message,omitempty" db:"message"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type EventType string

const (
	EventTypeLogin          EventType = "login"
	EventTypeTokenExchange  EventType = "token_exchange"
	EventTypeExchangeDenied EventType = "exchange_denied"
	EventTypeTenantMismatch EventType = "tenant_mismatch"
)
