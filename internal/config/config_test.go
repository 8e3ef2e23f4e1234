package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("port = %q", cfg.Server.Port)
	}
	if cfg.Database.DBName != "maktab" {
		t.Fatalf("dbname = %q", cfg.Database.DBName)
	}
	if cfg.JWT.AccessTokenExpiration != "1h" || cfg.JWT.RefreshTokenExpiration != "720h" {
		t.Fatalf("unexpected JWT expirations: %q / %q",
			cfg.JWT.AccessTokenExpiration, cfg.JWT.RefreshTokenExpiration)
	}
	if cfg.Seed.AdminUsername != "admin" {
		t.Fatalf("seed admin username = %q", cfg.Seed.AdminUsername)
	}
}

func TestLoadConfigFromFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: "9090"
database:
  host: "db.internal"
  dbname: "school"
jwt:
  secret: "file-secret"
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("DB_HOST", "env-host")
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Fatalf("env should override file, port = %q", cfg.Server.Port)
	}
	if cfg.Database.Host != "env-host" {
		t.Fatalf("env should override file, host = %q", cfg.Database.Host)
	}
	if cfg.Database.DBName != "school" {
		t.Fatalf("file should override default, dbname = %q", cfg.Database.DBName)
	}
	if cfg.JWT.Secret != "file-secret" {
		t.Fatalf("secret = %q", cfg.JWT.Secret)
	}
}

func TestEnvOverrideIntField(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_MAX_CONNS", "50")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Database.MaxConns != 50 {
		t.Fatalf("max conns = %d, want 50", cfg.Database.MaxConns)
	}
}

func TestEnvOverrideRejectsBadInt(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_MAX_CONNS", "lots")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for non-integer DB_MAX_CONNS")
	}
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error when JWT secret is unset")
	}
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "not-a-duration")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for malformed duration")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.Password = "pw"

	want := "postgres://postgres:pw@localhost:5432/maktab?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Fatalf("conn string = %q, want %q", got, want)
	}
}
