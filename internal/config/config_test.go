package config

import (
	"os"
	"testing"
)

// unsetenv clears a variable for the test while keeping t.Setenv's restore
// behavior. A set-but-empty variable would mask envconfig defaults.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "DATABASE_URL")
	unsetenv(t, "DATABASE_NAME")
	unsetenv(t, "PORT")
	unsetenv(t, "MAX_REQUEST_BODY_SIZE")
	unsetenv(t, "EVENT_HOOKS_ENABLED")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("Expected default port 8000, got %q", cfg.Server.Port)
	}
	if cfg.Database.Name != "mfo" {
		t.Errorf("Expected default database name mfo, got %q", cfg.Database.Name)
	}
	if cfg.Database.URL != "" {
		t.Errorf("Expected empty database URL, got %q", cfg.Database.URL)
	}
	if cfg.Security.MaxRequestBodySize != 1<<20 {
		t.Errorf("Expected 1MiB body limit, got %d", cfg.Security.MaxRequestBodySize)
	}
	if !cfg.Events.Enabled {
		t.Error("Expected event hooks enabled by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "offers")
	t.Setenv("TRACING_ENABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Database.URL != "mongodb://localhost:27017" {
		t.Errorf("Unexpected database URL %q", cfg.Database.URL)
	}
	if cfg.Database.Name != "offers" {
		t.Errorf("Unexpected database name %q", cfg.Database.Name)
	}
	if !cfg.Tracing.Enabled {
		t.Error("Expected tracing enabled")
	}
}
