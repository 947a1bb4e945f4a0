package config

import (
	"fmt"
	"strings"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// StoreConfig selects the storage backend.
type StoreConfig struct {
	Driver string `koanf:"driver"`
}

func (c *StoreConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Store ---\n")
	b.WriteString(fmt.Sprintf("  driver: %s\n", c.Driver))
	return b.String()
}

// Validate defaults an empty driver to postgres.
func (c *StoreConfig) Validate() error {
	switch c.Driver {
	case "":
		c.Driver = StoreDriverPostgres
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported store driver: %q", c.Driver)
	}
	return nil
}

// UsesPostgres reports whether the configured driver needs a database connection.
func (c *StoreConfig) UsesPostgres() bool {
	return c.Driver == StoreDriverPostgres
}
