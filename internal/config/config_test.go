package config

import (
	"strings"
	"testing"
	"time"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "local")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "x")
	t.Setenv("DB_NAME", "dashboards")
	t.Setenv("DB_SSLMODE", "disable")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6379")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_ALGORITHM", "")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("JWT_USER_TOKEN_TTL", "")
	t.Setenv("JWT_TENANT_TOKEN_TTL", "")
	t.Setenv("TENANT_CACHE_TTL", "")
}

func validBase() Config {
	return Config{
		App:   AppConfig{Env: "local", Port: 8080},
		DB:    DBConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "x", Name: "dashboards", SSLMode: "disable"},
		Redis: RedisConfig{Host: "localhost", Port: 6379},
		Auth:  AuthConfig{JWTSecret: "secret"},
	}
}

func TestValidate_ReportsMissingRequired(t *testing.T) {
	c := Config{}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestValidate_MissingSecretIsFatal(t *testing.T) {
	c := validBase()
	c.Auth.JWTSecret = "   "
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for blank JWT_SECRET")
	}
}

func TestValidate_DefaultsAlgorithmAndTTLs(t *testing.T) {
	c := validBase()
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.Auth.JWTAlgorithm != "HS256" {
		t.Fatalf("expected HS256 default, got %q", c.Auth.JWTAlgorithm)
	}
	if c.Auth.UserTokenTTL != time.Hour {
		t.Fatalf("expected 1h user TTL default, got %v", c.Auth.UserTokenTTL)
	}
	if c.Auth.TenantTokenTTL != 30*time.Minute {
		t.Fatalf("expected 30m tenant TTL default, got %v", c.Auth.TenantTokenTTL)
	}
}

func TestValidate_RejectsUnknownAlgorithm(t *testing.T) {
	c := validBase()
	c.Auth.JWTAlgorithm = "none"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for JWT_ALGORITHM none")
	}
}

func TestValidate_TenantTTLMustBeShorter(t *testing.T) {
	c := validBase()
	c.Auth.UserTokenTTL = 10 * time.Minute
	c.Auth.TenantTokenTTL = 10 * time.Minute
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for tenant TTL >= user TTL")
	}
}

func TestValidate_ProductionRequiresIssuer(t *testing.T) {
	c := validBase()
	c.App.Env = "production"
	c.DB.SSLMode = "require"
	c.Auth.JWTIssuer = ""
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for production without JWT_ISSUER")
	}
}

func TestLoad_ParsesDurations(t *testing.T) {
	setValidEnv(t)
	t.Setenv("JWT_USER_TOKEN_TTL", "2h")
	t.Setenv("JWT_TENANT_TOKEN_TTL", "45m")
	t.Setenv("TENANT_CACHE_TTL", "5m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Auth.UserTokenTTL != 2*time.Hour || cfg.Auth.TenantTokenTTL != 45*time.Minute {
		t.Fatalf("unexpected token TTLs: %+v", cfg.Auth)
	}
	if cfg.Cache.TenantTTL != 5*time.Minute {
		t.Fatalf("unexpected cache TTL: %v", cfg.Cache.TenantTTL)
	}
}

func TestLoad_MalformedDurationFailsStartup(t *testing.T) {
	setValidEnv(t)
	t.Setenv("JWT_USER_TOKEN_TTL", "1hour")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error for malformed JWT_USER_TOKEN_TTL")
	}
	if !strings.Contains(err.Error(), "JWT_USER_TOKEN_TTL") {
		t.Fatalf("error must name the offending variable, got %v", err)
	}
}

func TestValidate_LocalDefaultsSSLMode(t *testing.T) {
	c := validBase()
	c.DB.SSLMode = ""
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.DB.SSLMode != "disable" {
		t.Fatalf("expected sslmode disable default, got %q", c.DB.SSLMode)
	}
}
