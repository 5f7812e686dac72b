package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"HTTP_PORT", "FRONTEND_URL", "AUTH_SECRET",
	"WHATSAPP_APP_SECRET", "MESSENGER_APP_SECRET",
	"WHATSAPP_API_URL", "MESSENGER_API_URL", "PROVIDER_TIMEOUT",
	"WEBHOOK_WORKERS", "OUTBOUND_WORKERS", "QUEUE_MAX_ATTEMPTS",
	"QUEUE_POLL_INTERVAL", "QUEUE_JOB_TIMEOUT", "QUEUE_SHUTDOWN_TIMEOUT",
	"COORD_URL", "COORD_LOCK_TTL", "COORD_SESSION_TTL", "COORD_EVENT_CHANNEL",
}

func setupEnv(t *testing.T, vars map[string]string) {
	for _, key := range configEnvKeys {
		os.Unsetenv(key)
	}
	for key, val := range vars {
		os.Setenv(key, val)
	}
	t.Cleanup(func() {
		for _, key := range configEnvKeys {
			os.Unsetenv(key)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"AUTH_SECRET":          "test-secret",
		"WHATSAPP_APP_SECRET":  "wa-secret",
		"MESSENGER_APP_SECRET": "ms-secret",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "http://localhost:5173", cfg.FrontendURL)
	assert.Equal(t, 16, cfg.Queue.WebhookWorkers)
	assert.Equal(t, 16, cfg.Queue.OutboundWorkers)
	assert.Equal(t, 3, cfg.Queue.MaxAttempts)
	assert.Equal(t, 1*time.Second, cfg.Queue.WebhookBackoffBase)
	assert.Equal(t, 2*time.Second, cfg.Queue.OutboundBackoffBase)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Coord.URL)
	assert.Equal(t, 5*time.Second, cfg.Coord.LockTTL)
	assert.Equal(t, 30*time.Second, cfg.Providers.WhatsApp.Timeout)
}

func TestLoad_Overrides(t *testing.T) {
	setupEnv(t, map[string]string{
		"AUTH_SECRET":          "test-secret",
		"WHATSAPP_APP_SECRET":  "wa-secret",
		"MESSENGER_APP_SECRET": "ms-secret",
		"HTTP_PORT":            "9090",
		"WEBHOOK_WORKERS":      "4",
		"QUEUE_POLL_INTERVAL":  "250ms",
		"COORD_URL":            "redis://coord.internal:6379/1",
		"PROVIDER_TIMEOUT":     "5s",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 4, cfg.Queue.WebhookWorkers)
	assert.Equal(t, 250*time.Millisecond, cfg.Queue.PollInterval)
	assert.Equal(t, "redis://coord.internal:6379/1", cfg.Coord.URL)
	assert.Equal(t, 5*time.Second, cfg.Providers.Messenger.Timeout)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name        string
		vars        map[string]string
		errContains string
	}{
		{
			name: "missing auth secret",
			vars: map[string]string{
				"WHATSAPP_APP_SECRET":  "wa",
				"MESSENGER_APP_SECRET": "ms",
			},
			errContains: "AUTH_SECRET",
		},
		{
			name: "missing whatsapp secret",
			vars: map[string]string{
				"AUTH_SECRET":          "s",
				"MESSENGER_APP_SECRET": "ms",
			},
			errContains: "WHATSAPP_APP_SECRET",
		},
		{
			name: "missing messenger secret",
			vars: map[string]string{
				"AUTH_SECRET":         "s",
				"WHATSAPP_APP_SECRET": "wa",
			},
			errContains: "MESSENGER_APP_SECRET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupEnv(t, tt.vars)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestQueueConfig_Validate(t *testing.T) {
	cfg := DefaultQueueConfig()
	assert.NoError(t, cfg.Validate())

	cfg.WebhookWorkers = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultQueueConfig()
	cfg.MaxAttempts = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultQueueConfig()
	cfg.PollInterval = 0
	assert.Error(t, cfg.Validate())
}
