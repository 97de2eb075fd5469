package auth

import (
	"fmt"

	"dashboard-platform/internal/httperr"
	"dashboard-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

// TenantMismatchError reports a valid tenant token used against a different
// tenant's resource. Both identifiers are deliberately included in the message
// for audit traceability; tenant ids are not secrets and are never redacted.
type TenantMismatchError struct {
	TokenTenantID     string
	RequestedTenantID string
}

func (e *TenantMismatchError) Error() string {
	return fmt.Sprintf("token tenant_id %s does not match requested tenant %s", e.TokenTenantID, e.RequestedTenantID)
}

// ValidateTenantAccess enforces the single most important invariant of the
// system: the tenant named by the resource must be the tenant bound into the
// caller's token. Exact string equality, no normalization.
func ValidateTenantAccess(requestedTenantID string, claims TenantClaims) error {
	if claims.TenantID != requestedTenantID {
		return &TenantMismatchError{
			TokenTenantID:     claims.TenantID,
			RequestedTenantID: requestedTenantID,
		}
	}
	return nil
}

// RequireTenantMatch guards routes carrying a tenant id path segment.
// Chain it after RequireTenantToken.
func RequireTenantMatch(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := TenantClaimsFrom(c.Request.Context())
		if err != nil {
			httperr.AbortUnauthorized(c, httperr.CodeInvalidTenantToken, "Invalid or expired tenant token")
			return
		}
		if err := ValidateTenantAccess(c.Param(param), claims); err != nil {
			logger.FromGin(c).Warn("tenant access denied",
				"user_id", claims.UserID,
				"token_tenant_id", claims.TenantID,
				"requested_tenant_id", c.Param(param))
			httperr.AbortForbidden(c, httperr.CodeTenantMismatch, err.Error())
			return
		}
		c.Next()
	}
}
