package auth

import "time"

// ValidateUserToken decodes and checks a multi-tenant user token.
// Any failure, including a tenant token presented here, is ErrInvalidToken;
// callers must not try to distinguish causes.
func (c *Codec) ValidateUserToken(tokenString string, now time.Time) (UserClaims, error) {
	p, err := c.decode(tokenString, now)
	if err != nil {
		return UserClaims{}, err
	}
	if p.Kind != TokenKindUser {
		return UserClaims{}, ErrInvalidToken
	}
	return p.userClaims(), nil
}

// ValidateTenantToken decodes and checks a single-tenant session token.
func (c *Codec) ValidateTenantToken(tokenString string, now time.Time) (TenantClaims, error) {
	p, err := c.decode(tokenString, now)
	if err != nil {
		return TenantClaims{}, err
	}
	if p.Kind != TokenKindTenant {
		return TenantClaims{}, ErrInvalidToken
	}
	if p.TenantID == "" || p.Role == "" {
		return TenantClaims{}, ErrInvalidToken
	}
	return p.tenantClaims(), nil
}
