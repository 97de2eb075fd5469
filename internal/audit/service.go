package audit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence contract for audit events.
//
// It MUST be append-only.
// No Update/Delete methods are provided by design.

type Repository interface {
	Append(ctx context.Context, e Event) error
}

// Service records auth decisions for the audit trail.
//
// IMPORTANT:
// - Audit is internal-only. Do not expose these records to tenant users.
// - Callers should treat audit logging as best-effort.

type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

var ErrInvalidEvent = errors.New("audit: invalid event")

func (s *Service) Append(ctx context.Context, e Event) error {
	if s.repo == nil {
		return errors.New("audit: repository not configured")
	}
	if e.Type == "" {
		return ErrInvalidEvent
	}
	if e.ActorUserID == "" {
		return ErrInvalidEvent
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.clock().UTC()
	}
	return s.repo.Append(ctx, e)
}

// LogLogin records a successful user-token issuance.
func (s *Service) LogLogin(ctx context.Context, userID, email string) error {
	return s.Append(ctx, Event{
		Type:        EventTypeLogin,
		ActorUserID: userID,
		Email:       email,
		Message:     "user token issued",
	})
}

// LogTokenExchange records a successful exchange into a tenant session.
func (s *Service) LogTokenExchange(ctx context.Context, userID, email, tenantID, role string) error {
	return s.Append(ctx, Event{
		Type:        EventTypeTokenExchange,
		ActorUserID: userID,
		Email:       email,
		TenantID:    tenantID,
		Role:        role,
		Message:     "tenant token issued",
	})
}

// LogExchangeDenied records an exchange attempt for an unauthorized tenant.
func (s *Service) LogExchangeDenied(ctx context.Context, userID, email, tenantID string) error {
	return s.Append(ctx, Event{
		Type:        EventTypeExchangeDenied,
		ActorUserID: userID,
		Email:       email,
		TenantID:    tenantID,
		Message:     "exchange denied: tenant not in membership list",
	})
}

// LogTenantMismatch records a scoped token used against another tenant.
func (s *Service) LogTenantMismatch(ctx context.Context, userID, tokenTenantID, requestedTenantID string) error {
	return s.Append(ctx, Event{
		Type:        EventTypeTenantMismatch,
		ActorUserID: userID,
		TenantID:    tokenTenantID,
		Message:     "requested tenant " + requestedTenantID,
	})
}
