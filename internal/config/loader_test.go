package config

import (
	"os"
	"testing"
)

func TestLoader_ParseEnvironment(t *testing.T) {

	t.Run("applies defaults when variables are missing", func(t *testing.T) {
		unset := []string{
			"DISPATCH_HTTP_PORT",
			"DISPATCH_SQLITE_DSN",
			"DISPATCH_NO_EQUIPMENT_ID",
		}
		for _, key := range unset {
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("failed to unset %s: %v", key, err)
			}
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 8080 {
			t.Fatalf("expected default HTTP port 8080, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "file:dispatch.db?_foreign_keys=on" {
			t.Fatalf("unexpected default DSN: %q", cfg.SQLiteDSN)
		}
		if cfg.NoEquipmentID != "no-equipment" {
			t.Fatalf("unexpected default sentinel id: %q", cfg.NoEquipmentID)
		}
		if cfg.UseMemoryStore() {
			t.Fatal("default DSN should not select the memory store")
		}
	})

	t.Run("reads explicit values", func(t *testing.T) {
		t.Setenv("DISPATCH_HTTP_PORT", "9090")
		t.Setenv("DISPATCH_SQLITE_DSN", "file:custom.db")
		t.Setenv("DISPATCH_NO_EQUIPMENT_ID", "none")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 9090 {
			t.Fatalf("expected port 9090, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "file:custom.db" {
			t.Fatalf("unexpected DSN: %q", cfg.SQLiteDSN)
		}
		if cfg.NoEquipmentID != "none" {
			t.Fatalf("unexpected sentinel id: %q", cfg.NoEquipmentID)
		}
	})

	t.Run("mem DSN selects the memory store", func(t *testing.T) {
		t.Setenv("DISPATCH_SQLITE_DSN", MemoryDSN)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if !cfg.UseMemoryStore() {
			t.Fatal("expected memory store selection")
		}
	})

	t.Run("rejects unparseable port values", func(t *testing.T) {
		tests := []string{"abc", "-1", "0"}
		for _, value := range tests {
			t.Setenv("DISPATCH_HTTP_PORT", value)
			if _, err := Load(); err == nil {
				t.Fatalf("port %q: expected error", value)
			}
		}
	})
}
