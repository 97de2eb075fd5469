package auth

import (
	"strings"
	"time"

	"dashboard-platform/internal/httperr"

	"github.com/gin-gonic/gin"
)

const authorizationHeader = "Authorization"
const bearerPrefix = "Bearer "

// Status mapping, preserved for client compatibility:
// - no credentials presented (header absent or not Bearer-shaped) => 403
// - credentials presented but empty                               => 401 MISSING_TOKEN
// - credentials presented but invalid/expired                     => 401 INVALID_*_TOKEN
// The 403-before-401 inversion is deliberate; do not "fix" it.

// RequireUserToken validates a multi-tenant user token and injects its claims
// into the request context for this request only.
func RequireUserToken(codec *Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, ok := bearerCredential(c)
		if !ok {
			return
		}

		claims, err := codec.ValidateUserToken(tok, time.Now())
		if err != nil {
			httperr.AbortUnauthorized(c, httperr.CodeInvalidUserToken, "Invalid or expired user token")
			return
		}

		c.Request = c.Request.WithContext(WithUserClaims(c.Request.Context(), claims))
		c.Next()
	}
}

// RequireTenantToken validates a single-tenant session token and injects its
// claims into the request context for this request only.
func RequireTenantToken(codec *Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, ok := bearerCredential(c)
		if !ok {
			return
		}

		claims, err := codec.ValidateTenantToken(tok, time.Now())
		if err != nil {
			httperr.AbortUnauthorized(c, httperr.CodeInvalidTenantToken, "Invalid or expired tenant token")
			return
		}

		c.Request = c.Request.WithContext(WithTenantClaims(c.Request.Context(), claims))
		c.Next()
	}
}

// bearerCredential extracts the bearer credential, aborting per the status
// mapping above. The bool reports whether the chain may continue.
func bearerCredential(c *gin.Context) (string, bool) {
	raw := strings.TrimSpace(c.GetHeader(authorizationHeader))
	if raw == "" || !strings.HasPrefix(raw, bearerPrefix) {
		httperr.AbortForbidden(c, httperr.CodeNotAuthenticated, "Not authenticated")
		return "", false
	}

	tok := strings.TrimSpace(strings.TrimPrefix(raw, bearerPrefix))
	if tok == "" {
		httperr.AbortUnauthorized(c, httperr.CodeMissingToken, "Authorization token is required")
		return "", false
	}
	return tok, true
}
