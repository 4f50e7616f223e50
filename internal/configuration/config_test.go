package configuration

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.SSLMode != "disable" {
		t.Errorf("Database.SSLMode = %q, want disable", cfg.Database.SSLMode)
	}
	if cfg.MinIO.BucketName != "files" {
		t.Errorf("MinIO.BucketName = %q, want files", cfg.MinIO.BucketName)
	}
	if cfg.LinkTTLHours != 168 {
		t.Errorf("LinkTTLHours = %d, want 168", cfg.LinkTTLHours)
	}
	if cfg.DDEnabled {
		t.Error("DDEnabled must default to false")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("LINK_TTL_HOURS", "24")

	cfg := Load()
	if cfg.Server.Port != "9999" {
		t.Errorf("Server.Port = %q, want 9999", cfg.Server.Port)
	}
	if cfg.LinkTTLHours != 24 {
		t.Errorf("LinkTTLHours = %d, want 24", cfg.LinkTTLHours)
	}
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("LINK_TTL_HOURS", "not-a-number")

	cfg := Load()
	if cfg.LinkTTLHours != 168 {
		t.Errorf("LinkTTLHours = %d, want default 168 on bad input", cfg.LinkTTLHours)
	}
}

func TestConnectionString(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "svc",
		Password: "pw",
		DBName:   "vault",
		SSLMode:  "require",
	}

	want := "postgres://svc:pw@db.internal:5433/vault?sslmode=require"
	if got := db.ConnectionString(); got != want {
		t.Errorf("ConnectionString() = %q, want %q", got, want)
	}
}
