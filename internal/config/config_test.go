package config

import (
	"testing"
	"time"
)

func TestLoad_ReportsMissingRequired(t *testing.T) {
	// Ensure a clean env by not setting anything and calling validation directly.
	c := Config{}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func validLocal() Config {
	return Config{
		App:      AppConfig{Env: "local", Port: 9090},
		Upstream: UpstreamConfig{BaseURL: "http://localhost:8080/api"},
		Redis:    RedisConfig{Host: "localhost", Port: 6379},
	}
}

func TestValidate_LocalDefaults(t *testing.T) {
	c := validLocal()
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.Session.CookieName != "mc_admin_session" {
		t.Fatalf("expected cookie name default, got %q", c.Session.CookieName)
	}
	if c.Session.TTL != 7*24*time.Hour {
		t.Fatalf("expected 7d session TTL default, got %v", c.Session.TTL)
	}
	if c.Upstream.Timeout != 10*time.Second {
		t.Fatalf("expected upstream timeout default, got %v", c.Upstream.Timeout)
	}
	if c.Login.AttemptLimit != 10 || c.Login.AttemptWindow != time.Minute {
		t.Fatalf("expected login limiter defaults, got %+v", c.Login)
	}
}

func TestValidate_UpstreamURLMustBeHTTP(t *testing.T) {
	c := validLocal()
	c.Upstream.BaseURL = "192.168.0.103:8080/api"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for schemeless upstream URL")
	}
}

func TestValidate_ProductionRequiresAuditDB(t *testing.T) {
	c := validLocal()
	c.App.Env = "production"
	c.Session.CookieSecure = true
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for production without DB_HOST")
	}
}

func TestValidate_ProductionRequiresSecureCookie(t *testing.T) {
	c := validLocal()
	c.App.Env = "production"
	c.DB = DBConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "x", Name: "console", SSLMode: "require"}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for production with insecure cookie")
	}
}

func TestValidate_LocalDefaultsSSLMode(t *testing.T) {
	c := validLocal()
	c.DB = DBConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "x", Name: "console", SSLMode: ""}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.DB.SSLMode != "disable" {
		t.Fatalf("expected sslmode disable default, got %q", c.DB.SSLMode)
	}
}
