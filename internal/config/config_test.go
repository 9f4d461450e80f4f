package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Environment != "development" {
		t.Fatalf("Environment default")
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("Server.Port default")
	}
	if cfg.Server.ReadTimeout != 15 || cfg.Server.WriteTimeout != 15 || cfg.Server.IdleTimeout != 60 {
		t.Fatalf("server timeout defaults")
	}
	if cfg.Database.Host != "localhost" || cfg.Database.Port != "5432" {
		t.Fatalf("database defaults")
	}
	if cfg.Database.Database != "product_api" {
		t.Fatalf("database name default")
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("CORS origins default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "5")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Environment != "staging" {
		t.Fatalf("Environment env")
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("Server.Port env")
	}
	if cfg.Server.ReadTimeout != 5 {
		t.Fatalf("Server.ReadTimeout env")
	}
	if cfg.Database.Host != "db.internal" {
		t.Fatalf("Database.Host env")
	}
	if cfg.Database.MaxOpenConns != 10 {
		t.Fatalf("Database.MaxOpenConns env")
	}
}

func TestCORSOriginsParsing(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://app.example.com, http://admin.example.com ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	origins := cfg.CORS.AllowedOrigins
	if len(origins) != 2 {
		t.Fatalf("expected 2 origins, got %d", len(origins))
	}
	if origins[0] != "http://app.example.com" || origins[1] != "http://admin.example.com" {
		t.Fatalf("origins not trimmed: %v", origins)
	}
}

func TestValidateProductionRequiresPassword(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DB_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing production password")
	}

	t.Setenv("DB_PASSWORD", "secret")
	if _, err := Load(); err != nil {
		t.Fatalf("Load with password: %v", err)
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "pw",
		Database: "product_api",
		SSLMode:  "disable",
	}

	want := "host=localhost port=5432 user=postgres password=pw dbname=product_api sslmode=disable"
	if got := d.DSN(); got != want {
		t.Fatalf("DSN mismatch:\n got %s\nwant %s", got, want)
	}
}
