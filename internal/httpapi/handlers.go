package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"dashboard-platform/internal/auth"
	"dashboard-platform/internal/dashdata"
	"dashboard-platform/internal/httperr"
	"dashboard-platform/internal/identity"
	"dashboard-platform/internal/tenant"
	"dashboard-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuditSink is the slice of the audit service the handlers record through.
// Audit is best-effort: append failures are logged, never surfaced.
type AuditSink interface {
	LogLogin(ctx context.Context, userID, email string) error
	LogTokenExchange(ctx context.Context, userID, email, tenantID, role string) error
	LogExchangeDenied(ctx context.Context, userID, email, tenantID string) error
	LogTenantMismatch(ctx context.Context, userID, tokenTenantID, requestedTenantID string) error
}

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call internal services, return JSON.

type Handlers struct {
	Codec    *auth.Codec
	Identity identity.Repository
	Tenants  tenant.Repository
	Data     dashdata.Provider
	Audit    AuditSink
}

/* ===================== AUTH ===================== */

type loginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Login issues a multi-tenant user token for a known email.
//
// NOTE: PoC-only credential model; a real deployment fronts this with an
// OIDC flow and keeps only the issuance half.
func (h Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, "email is required")
		return
	}

	user, err := h.Identity.GetUserByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, identity.ErrNotFound) {
		httperr.AbortNotFound(c, httperr.CodeUserNotFound, "User with email "+req.Email+" not found")
		return
	}
	if err != nil {
		httperr.AbortInternal(c, httperr.CodeDatabaseError, "Failed to look up user")
		return
	}

	tenantIDs, err := h.Identity.ListTenantIDs(c.Request.Context(), user.UserID)
	if err != nil {
		httperr.AbortInternal(c, httperr.CodeDatabaseError, "Failed to look up tenant memberships")
		return
	}

	tok, err := h.Codec.EncodeUser(time.Now(), auth.UserTokenInput{
		UserID:    user.UserID,
		Email:     user.Email,
		TenantIDs: tenantIDs,
	})
	if err != nil {
		httperr.AbortInternal(c, httperr.CodeDatabaseError, "Token issuance failed")
		return
	}

	if h.Audit != nil {
		if err := h.Audit.LogLogin(c.Request.Context(), user.UserID, user.Email); err != nil {
			logger.FromGin(c).Warn("audit append failed", "err", err)
		}
	}
	logger.FromGin(c).Info("user token issued", "user_id", user.UserID, "tenant_count", len(tenantIDs))

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: tok,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.Codec.UserTokenTTL().Seconds()),
	})
}

type exchangeRequest struct {
	TenantID string `json:"tenant_id"`
}

// Exchange trades a user token for a tenant-scoped session token.
// The requested tenant must be in the user token's membership list; the role
// is fetched from the identity store, never taken from claims.
func (h Handlers) Exchange(c *gin.Context) {
	claims, err := auth.UserClaimsFrom(c.Request.Context())
	if err != nil {
		httperr.AbortUnauthorized(c, httperr.CodeInvalidUserToken, "Invalid or expired user token")
		return
	}

	var req exchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TenantID == "" {
		httperr.AbortBadRequest(c, "tenant_id is required")
		return
	}

	if !containsString(claims.TenantIDs, req.TenantID) {
		if h.Audit != nil {
			if err := h.Audit.LogExchangeDenied(c.Request.Context(), claims.UserID, claims.Email, req.TenantID); err != nil {
				logger.FromGin(c).Warn("audit append failed", "err", err)
			}
		}
		logger.FromGin(c).Warn("token exchange denied",
			"user_id", claims.UserID, "requested_tenant_id", req.TenantID)
		httperr.AbortForbidden(c, httperr.CodeTenantAccessDenied, "User does not have access to tenant "+req.TenantID)
		return
	}

	role, err := h.Identity.GetRole(c.Request.Context(), claims.UserID, req.TenantID)
	if errors.Is(err, identity.ErrNotFound) {
		// Membership said yes but the role row is gone; treat as server state
		// drift, not as a client error.
		httperr.AbortInternal(c, httperr.CodeRoleNotFound, "User role not found for tenant")
		return
	}
	if err != nil {
		httperr.AbortInternal(c, httperr.CodeDatabaseError, "Failed to retrieve user role")
		return
	}

	tok, err := h.Codec.EncodeTenant(time.Now(), auth.TenantTokenInput{
		UserID:   claims.UserID,
		Email:    claims.Email,
		TenantID: req.TenantID,
		Role:     role,
	})
	if err != nil {
		httperr.AbortInternal(c, httperr.CodeDatabaseError, "Token issuance failed")
		return
	}

	if h.Audit != nil {
		if err := h.Audit.LogTokenExchange(c.Request.Context(), claims.UserID, claims.Email, req.TenantID, role); err != nil {
			logger.FromGin(c).Warn("audit append failed", "err", err)
		}
	}
	logger.FromGin(c).Info("token exchange successful",
		"user_id", claims.UserID, "tenant_id", req.TenantID, "role", role)

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: tok,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.Codec.TenantTokenTTL().Seconds()),
	})
}

/* ===================== USER ===================== */

type tenantInfo struct {
	TenantID string         `json:"tenant_id"`
	Name     string         `json:"name"`
	Slug     string         `json:"slug"`
	Role     string         `json:"role"`
	Config   map[string]any `json:"config"`
}

type userInfoResponse struct {
	UserID  string       `json:"user_id"`
	Email   string       `json:"email"`
	Tenants []tenantInfo `json:"tenants"`
}

// Me returns the authenticated user's profile and selectable tenants.
func (h Handlers) Me(c *gin.Context) {
	claims, err := auth.UserClaimsFrom(c.Request.Context())
	if err != nil {
		httperr.AbortUnauthorized(c, httperr.CodeInvalidUserToken, "Invalid or expired user token")
		return
	}

	user, err := h.Identity.GetUserByID(c.Request.Context(), claims.UserID)
	if errors.Is(err, identity.ErrNotFound) {
		httperr.AbortNotFound(c, httperr.CodeUserNotFound, "User "+claims.UserID+" not found")
		return
	}
	if err != nil {
		httperr.AbortInternal(c, httperr.CodeDatabaseError, "Failed to look up user")
		return
	}

	memberships, err := h.Identity.ListMemberships(c.Request.Context(), user.UserID, claims.TenantIDs)
	if err != nil {
		httperr.AbortInternal(c, httperr.CodeDatabaseError, "Failed to look up tenant memberships")
		return
	}

	tenants := make([]tenantInfo, 0, len(memberships))
	for _, m := range memberships {
		tenants = append(tenants, tenantInfo{
			TenantID: m.TenantID,
			Name:     m.Name,
			Slug:     m.Slug,
			Role:     m.Role,
			Config:   m.Config,
		})
	}

	c.JSON(http.StatusOK, userInfoResponse{
		UserID:  user.UserID,
		Email:   user.Email,
		Tenants: tenants,
	})
}

/* ===================== TENANT ===================== */

// GetTenantMetadata serves tenant metadata. Route middleware has already
// validated the tenant token and enforced the tenant match.
func (h Handlers) GetTenantMetadata(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	t, err := h.Tenants.GetTenant(c.Request.Context(), tenantID)
	if errors.Is(err, tenant.ErrNotFound) {
		httperr.AbortNotFound(c, httperr.CodeTenantNotFound, "Tenant "+tenantID+" not found")
		return
	}
	if err != nil {
		httperr.AbortInternal(c, httperr.CodeDatabaseError, "Failed to look up tenant")
		return
	}

	c.JSON(http.StatusOK, t)
}

// ListTenantDashboards serves the tenant's dashboard list, title ascending.
// An empty list is a valid response, not an error.
func (h Handlers) ListTenantDashboards(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	ds, err := h.Tenants.ListDashboards(c.Request.Context(), tenantID)
	if err != nil {
		httperr.AbortInternal(c, httperr.CodeDatabaseError, "Failed to look up dashboards")
		return
	}

	c.JSON(http.StatusOK, ds)
}

/* ===================== DASHBOARD DATA ===================== */

type dashboardDataResponse struct {
	TenantID      string            `json:"tenant_id"`
	DashboardSlug string            `json:"dashboard_slug"`
	Data          []dashdata.Record `json:"data"`
}

// DashboardData serves tenant-scoped rows for one dashboard. The slug is
// resolved to its tenant assignment first; serving data for an unassigned
// slug would bypass the tenant guard, so that case is a hard 403.
func (h Handlers) DashboardData(c *gin.Context) {
	claims, err := auth.TenantClaimsFrom(c.Request.Context())
	if err != nil {
		httperr.AbortUnauthorized(c, httperr.CodeInvalidTenantToken, "Invalid or expired tenant token")
		return
	}
	slug := c.Param("slug")

	assigned, err := h.Tenants.IsDashboardAssigned(c.Request.Context(), slug, claims.TenantID)
	if err != nil {
		httperr.AbortInternal(c, httperr.CodeDatabaseError, "Failed to resolve dashboard assignment")
		return
	}
	if !assigned {
		if h.Audit != nil {
			if err := h.Audit.LogTenantMismatch(c.Request.Context(), claims.UserID, claims.TenantID, slug); err != nil {
				logger.FromGin(c).Warn("audit append failed", "err", err)
			}
		}
		logger.FromGin(c).Warn("dashboard access mismatch",
			"user_id", claims.UserID, "tenant_id", claims.TenantID, "slug", slug)
		httperr.AbortForbidden(c, httperr.CodeTenantMismatch,
			"token tenant_id "+claims.TenantID+" is not assigned dashboard "+slug)
		return
	}

	rows, err := h.Data.Load(c.Request.Context(), claims.TenantID, slug)
	if errors.Is(err, dashdata.ErrNoData) {
		httperr.AbortNotFound(c, httperr.CodeDataNotFound, "No data available for dashboard "+slug)
		return
	}
	if err != nil {
		httperr.AbortInternal(c, httperr.CodeDatabaseError, "Failed to load dashboard data")
		return
	}

	c.JSON(http.StatusOK, dashboardDataResponse{
		TenantID:      claims.TenantID,
		DashboardSlug: slug,
		Data:          rows,
	})
}

func containsString(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}
