package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MemoryDSN selects the non-durable in-memory assignment store.
const MemoryDSN = "mem:"

// Config captures environment driven configuration values for the dispatch service.
type Config struct {
	HTTPPort      int
	SQLiteDSN     string
	NoEquipmentID string
}

// Load parses configuration values from the current process environment.
//
// Every value has a default, so a bare environment yields a working
// configuration. Values that are present but unparseable fail the load.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:      8080,
		SQLiteDSN:     "file:dispatch.db?_foreign_keys=on",
		NoEquipmentID: "no-equipment",
	}

	invalid := make([]string, 0, 1)

	if portValue := strings.TrimSpace(os.Getenv("DISPATCH_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "DISPATCH_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("DISPATCH_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if sentinel := strings.TrimSpace(os.Getenv("DISPATCH_NO_EQUIPMENT_ID")); sentinel != "" {
		cfg.NoEquipmentID = sentinel
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("environment variables have invalid values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// UseMemoryStore reports whether the DSN selects the in-memory store.
func (c Config) UseMemoryStore() bool {
	return c.SQLiteDSN == MemoryDSN
}
