package auth

import (
	"context"
	"errors"
)

type ctxKey int

const (
	ctxUserClaims ctxKey = iota
	ctxTenantClaims
)

func WithUserClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, ctxUserClaims, claims)
}

func UserClaimsFrom(ctx context.Context) (UserClaims, error) {
	if c, ok := ctx.Value(ctxUserClaims).(UserClaims); ok && c.UserID != "" {
		return c, nil
	}
	return UserClaims{}, errors.New("user claims not in context")
}

func WithTenantClaims(ctx context.Context, claims TenantClaims) context.Context {
	return context.WithValue(ctx, ctxTenantClaims, claims)
}

func TenantClaimsFrom(ctx context.Context) (TenantClaims, error) {
	if c, ok := ctx.Value(ctxTenantClaims).(TenantClaims); ok && c.TenantID != "" {
		return c, nil
	}
	return TenantClaims{}, errors.New("tenant claims not in context")
}
