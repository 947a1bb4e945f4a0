package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vistula/firstapi/pkg/config"
	"github.com/vistula/firstapi/pkg/config/configloader"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.HTTPServer.Port = 8080
	cfg.HTTPServer.Timeout.Read = time.Second
	cfg.HTTPServer.Timeout.Write = time.Second
	cfg.HTTPServer.Timeout.Idle = time.Second
	cfg.HTTPServer.Timeout.ReadHeader = time.Second
	cfg.Store.Driver = config.StoreDriverMemory
	cfg.Log.Level = "info"
	cfg.GRPC.Port = "9090"
	cfg.Shutdown.Timeout = time.Second
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		expectErr string
	}{
		{
			name:   "memory store needs no database",
			mutate: func(c *Config) {},
		},
		{
			name:      "postgres store needs a database",
			mutate:    func(c *Config) { c.Store.Driver = config.StoreDriverPostgres },
			expectErr: "invalid database configuration",
		},
		{
			name:      "unknown log level",
			mutate:    func(c *Config) { c.Log.Level = "verbose" },
			expectErr: "invalid log configuration",
		},
		{
			name: "empty driver defaults to postgres",
			mutate: func(c *Config) {
				c.Store.Driver = ""
				c.Database.URL = "postgres://u:p@localhost:5432/db"
				c.Database.Timeout = time.Second
			},
		},
		{
			name:      "unknown driver",
			mutate:    func(c *Config) { c.Store.Driver = "mongo" },
			expectErr: `unsupported store driver: "mongo"`,
		},
		{
			name:      "missing shutdown timeout",
			mutate:    func(c *Config) { c.Shutdown.Timeout = 0 },
			expectErr: "invalid shutdown configuration",
		},
		{
			name: "nats enabled requires circuit breaker",
			mutate: func(c *Config) {
				c.NATS = config.NATSConfig{Enabled: true, Url: "nats://localhost:4222", Timeout: time.Second, Stream: "PRODUCTS"}
			},
			expectErr: "circuitbreaker.consecutivefailures must be greater than 0",
		},
		{
			name:      "bad grpc port",
			mutate:    func(c *Config) { c.GRPC.Port = "" },
			expectErr: "gRPC port is not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.expectErr != "" {
				assert.ErrorContains(t, err, tt.expectErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfig_StringMasksCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Driver = config.StoreDriverPostgres
	cfg.Database.URL = "postgres://admin:secret@db:5432/products"

	out := cfg.String()

	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "db:5432/products")
}

func TestLoad_RepositoryConfigFile(t *testing.T) {
	// given
	t.Setenv("PRODUCT_STORE_DRIVER", "memory")
	t.Setenv("PRODUCT_SERVER_PORT", "18080")

	// when
	cfg, err := configloader.Load[*Config]("product",
		configloader.WithConfigFile(filepath.Join("..", "..", "..", "config.yaml")),
		configloader.WithEnvFile(filepath.Join(t.TempDir(), "missing.env")),
	)

	// then
	require.NoError(t, err)
	assert.Equal(t, 18080, cfg.HTTPServer.Port)
	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, 1048576, cfg.HTTPServer.MaxHeaderBytes)
	assert.Equal(t, 2*time.Second, cfg.HTTPServer.Timeout.ReadHeader)
	assert.Equal(t, "9090", cfg.GRPC.Port)
	assert.Equal(t, 15*time.Second, cfg.Shutdown.Timeout)
	assert.Equal(t, uint32(5), cfg.Resilience.CircuitBreaker.ConsecutiveFailures)
	assert.False(t, cfg.NATS.Enabled)
}

func TestLoad_EnvFileOverridesYAML(t *testing.T) {
	// given
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "config.yaml")
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
server:
  port: 8080
  timeout: {read: 1s, write: 1s, idle: 1s, readHeader: 1s}
store:
  driver: memory
log:
  level: info
grpc:
  port: "9090"
shutdown:
  timeout: 1s
`), 0o600))
	require.NoError(t, os.WriteFile(envPath, []byte("PRODUCT_LOG_LEVEL=debug\n"), 0o600))

	// when
	cfg, err := configloader.Load[*Config]("product",
		configloader.WithConfigFile(yamlPath),
		configloader.WithEnvFile(envPath),
	)

	// then
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}
