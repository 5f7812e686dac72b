package config

import (
	"fmt"
	"os"
	"time"
)

// ProviderConfig holds the settings for one messaging provider integration.
type ProviderConfig struct {
	// AppSecret is the provider-wide HMAC key for webhook signature
	// verification. Channels may override it with their own app_secret.
	AppSecret string

	// APIBaseURL is the provider's send API root.
	APIBaseURL string

	// Timeout bounds each outbound send call.
	Timeout time.Duration
}

// ProvidersConfig groups the supported provider integrations.
type ProvidersConfig struct {
	WhatsApp  ProviderConfig
	Messenger ProviderConfig
}

func loadProvidersFromEnv() ProvidersConfig {
	timeout := getDurationEnv("PROVIDER_TIMEOUT", 30*time.Second)
	return ProvidersConfig{
		WhatsApp: ProviderConfig{
			AppSecret:  os.Getenv("WHATSAPP_APP_SECRET"),
			APIBaseURL: getEnv("WHATSAPP_API_URL", "https://graph.facebook.com/v19.0"),
			Timeout:    timeout,
		},
		Messenger: ProviderConfig{
			AppSecret:  os.Getenv("MESSENGER_APP_SECRET"),
			APIBaseURL: getEnv("MESSENGER_API_URL", "https://graph.facebook.com/v19.0"),
			Timeout:    timeout,
		},
	}
}

// Validate requires an app secret per provider; without one, webhook
// signatures cannot be verified and every delivery would be rejected.
func (p ProvidersConfig) Validate() error {
	if p.WhatsApp.AppSecret == "" {
		return fmt.Errorf("WHATSAPP_APP_SECRET is required")
	}
	if p.Messenger.AppSecret == "" {
		return fmt.Errorf("MESSENGER_APP_SECRET is required")
	}
	return nil
}
