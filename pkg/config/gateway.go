package config

import "time"

// GatewayConfig holds websocket gateway tuning.
type GatewayConfig struct {
	// WriteTimeout bounds a single frame write to a client.
	WriteTimeout time.Duration

	// SendBuffer is the per-connection outbound channel capacity.
	// A client that cannot drain this many events is disconnected.
	SendBuffer int
}

// DefaultGatewayConfig returns the built-in gateway defaults.
func DefaultGatewayConfig() GatewayConfig {
	return GatewayConfig{
		WriteTimeout: 10 * time.Second,
		SendBuffer:   64,
	}
}
