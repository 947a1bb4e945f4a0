package config

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ShutdownConfig bounds graceful shutdown. Timeout applies to each server drain (HTTP, gRPC, pprof);
// TelemetryFlush applies to each telemetry provider flush and falls back to Timeout when unset.
type ShutdownConfig struct {
	Timeout        time.Duration `koanf:"timeout" validate:"gt=0"`
	TelemetryFlush time.Duration `koanf:"telemetryflush" validate:"gte=0"`
}

// String returns a string representation of the ShutdownConfig.
func (c *ShutdownConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Shutdown ---\n")
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	b.WriteString(fmt.Sprintf("  telemetryflush: %s\n", c.flushTimeout()))
	return b.String()
}

func (c *ShutdownConfig) Validate() error {
	return validateStruct("shutdown", c)
}

// DrainContext returns a fresh context for draining one server. The run context is already
// cancelled at that point, so it is not derived from it.
func (c *ShutdownConfig) DrainContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.Timeout)
}

// FlushContext returns a fresh context for flushing one telemetry provider.
func (c *ShutdownConfig) FlushContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.flushTimeout())
}

func (c *ShutdownConfig) flushTimeout() time.Duration {
	if c.TelemetryFlush > 0 {
		return c.TelemetryFlush
	}
	return c.Timeout
}
