package identity

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("identity: not found")

// Repository is the persistence contract for users and tenant memberships.
//
// ListMemberships must only return tenants that are both active and contained
// in tenantIDs; the token's membership list is the authority on what the user
// may even see. Results are sorted by tenant name ascending.
type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, userID string) (User, error)
	ListTenantIDs(ctx context.Context, userID string) ([]string, error)
	ListMemberships(ctx context.Context, userID string, tenantIDs []string) ([]Membership, error)
	GetRole(ctx context.Context, userID, tenantID string) (string, error)
}
