package auth

import (
	"errors"
	"time"

	"dashboard-platform/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is the single failure kind for every decode problem: bad
// signature, wrong secret, malformed payload, missing fields, wrong kind, or
// expiry. Collapsing them keeps callers (and attackers) from distinguishing
// "expired" from "forged".
var ErrInvalidToken = errors.New("invalid or expired token")

// ErrMissingToken means a credential slot was presented but held no token.
var ErrMissingToken = errors.New("authorization token is required")

const clockSkewLeeway = 30 * time.Second

// Codec maps claim structures to signed tokens and back. It is built once from
// the process trust root and is immutable afterwards; it holds no other state,
// so it is safe for concurrent use.
type Codec struct {
	secret    []byte
	method    jwt.SigningMethod
	issuer    string
	userTTL   time.Duration
	tenantTTL time.Duration
}

func NewCodec(cfg config.AuthConfig) (*Codec, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	method := jwt.GetSigningMethod(cfg.JWTAlgorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("JWT_ALGORITHM must be an HMAC variant")
	}
	if cfg.UserTokenTTL <= 0 || cfg.TenantTokenTTL <= 0 {
		return nil, errors.New("token TTLs must be positive")
	}
	if cfg.TenantTokenTTL >= cfg.UserTokenTTL {
		return nil, errors.New("tenant token TTL must be shorter than user token TTL")
	}

	return &Codec{
		secret:    []byte(cfg.JWTSecret),
		method:    method,
		issuer:    cfg.JWTIssuer,
		userTTL:   cfg.UserTokenTTL,
		tenantTTL: cfg.TenantTokenTTL,
	}, nil
}

func (c *Codec) UserTokenTTL() time.Duration   { return c.userTTL }
func (c *Codec) TenantTokenTTL() time.Duration { return c.tenantTTL }

// UserTokenInput carries the identity data bound into a user token.
type UserTokenInput struct {
	UserID    string
	Email     string
	TenantIDs []string
}

// TenantTokenInput carries the identity data bound into a tenant session
// token. TenantID must already be authorized for the user; the codec does not
// re-check membership.
type TenantTokenInput struct {
	UserID   string
	Email    string
	TenantID string
	Role     string
}

/* ===================== ENCODE ===================== */

// EncodeUser signs a multi-tenant user token expiring at now+UserTokenTTL.
func (c *Codec) EncodeUser(now time.Time, in UserTokenInput) (string, error) {
	if in.UserID == "" {
		return "", errors.New("user_id is required")
	}
	return c.sign(payload{
		RegisteredClaims: c.registered(now, in.UserID, c.userTTL),
		Email:            in.Email,
		TenantIDs:        in.TenantIDs,
		Kind:             TokenKindUser,
	})
}

// EncodeTenant signs a single-tenant session token expiring at
// now+TenantTokenTTL. Tenant sessions expire sooner than user tokens to limit
// the blast radius of a leaked scoped token.
func (c *Codec) EncodeTenant(now time.Time, in TenantTokenInput) (string, error) {
	if in.UserID == "" {
		return "", errors.New("user_id is required")
	}
	if in.TenantID == "" {
		return "", errors.New("tenant_id is required")
	}
	if in.Role == "" {
		return "", errors.New("role is required")
	}
	return c.sign(payload{
		RegisteredClaims: c.registered(now, in.UserID, c.tenantTTL),
		Email:            in.Email,
		TenantID:         in.TenantID,
		Role:             in.Role,
		Kind:             TokenKindTenant,
	})
}

func (c *Codec) registered(now time.Time, sub string, ttl time.Duration) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}
}

func (c *Codec) sign(p payload) (string, error) {
	t := jwt.NewWithClaims(c.method, p)
	return t.SignedString(c.secret)
}

/* ===================== DECODE ===================== */

// decode verifies signature and expiry against now and returns the raw
// payload tagged with its kind. Callers get ErrInvalidToken for any failure.
func (c *Codec) decode(tokenString string, now time.Time) (payload, error) {
	var p payload

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithLeeway(clockSkewLeeway),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}

	parser := jwt.NewParser(opts...)
	_, err := parser.ParseWithClaims(tokenString, &p, func(token *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return payload{}, ErrInvalidToken
	}

	if p.Subject == "" || p.IssuedAt == nil || p.ExpiresAt == nil {
		return payload{}, ErrInvalidToken
	}
	switch p.Kind {
	case TokenKindUser, TokenKindTenant:
	default:
		return payload{}, ErrInvalidToken
	}
	return p, nil
}
