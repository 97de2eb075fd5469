package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind is the explicit discriminant embedded in every token payload at
// encode time. Decode dispatches on it instead of inferring the shape from
// which fields happen to be present.
type TokenKind string

const (
	TokenKindUser   TokenKind = "user"
	TokenKindTenant TokenKind = "tenant"
)

// payload is the raw on-the-wire claims shape for both token kinds.
// Multi-tenant invariant: a tenant token carries exactly one tenant_id; a user
// token carries the full tenant_ids membership list and nothing tenant-scoped.
type payload struct {
	jwt.RegisteredClaims

	Email     string    `json:"email"`
	TenantIDs []string  `json:"tenant_ids,omitempty"`
	TenantID  string    `json:"tenant_id,omitempty"`
	Role      string    `json:"role,omitempty"`
	Kind      TokenKind `json:"kind"`
}

// UserClaims is the validated view of a multi-tenant user token.
type UserClaims struct {
	UserID    string
	Email     string
	TenantIDs []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TenantClaims is the validated view of a single-tenant session token.
// It lives for the duration of one request and is never cached across requests.
type TenantClaims struct {
	UserID    string
	Email     string
	TenantID  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (p payload) userClaims() UserClaims {
	return UserClaims{
		UserID:    p.Subject,
		Email:     p.Email,
		TenantIDs: p.TenantIDs,
		IssuedAt:  p.IssuedAt.Time,
		ExpiresAt: p.ExpiresAt.Time,
	}
}

func (p payload) tenantClaims() TenantClaims {
	return TenantClaims{
		UserID:    p.Subject,
		Email:     p.Email,
		TenantID:  p.TenantID,
		Role:      p.Role,
		IssuedAt:  p.IssuedAt.Time,
		ExpiresAt: p.ExpiresAt.Time,
	}
}
