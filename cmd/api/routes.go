package main

import (
	"dashboard-platform/internal/auth"
	"dashboard-platform/internal/httpapi"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to internal modules.
//
// Every route carrying a tenant_id path segment runs the tenant-match guard
// after token validation; the dashboard data route resolves its slug to the
// owning tenant inside the handler and applies the same check there.
func registerRoutes(r *gin.Engine, codec *auth.Codec, h httpapi.Handlers) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Issuance: login is public, exchange requires a user token.
	api.POST("/auth/login", h.Login)
	api.POST("/token/exchange", auth.RequireUserToken(codec), h.Exchange)

	// User-token routes (tenant selection UI).
	api.GET("/me", auth.RequireUserToken(codec), h.Me)

	// Tenant-token routes.
	tenantGroup := api.Group("/tenant")
	tenantGroup.Use(auth.RequireTenantToken(codec))
	tenantGroup.Use(auth.RequireTenantMatch("tenant_id"))
	{
		tenantGroup.GET("/:tenant_id", h.GetTenantMetadata)
		tenantGroup.GET("/:tenant_id/dashboards", h.ListTenantDashboards)
	}

	dashboards := api.Group("/dashboards")
	dashboards.Use(auth.RequireTenantToken(codec))
	{
		dashboards.GET("/:slug/data", h.DashboardData)
	}
}
