package config

import (
	"fmt"

	"github.com/mraditya/pasarku/internal/pkg/models"
	"github.com/spf13/viper"
)

// LoadGatewayConfig reads payment gateway configuration from a YAML file.
// Which statuses count as settled and where the payment URL appears in a
// gateway response are reviewable configuration, so they live in this file
// next to the credentials rather than in code.
func LoadGatewayConfig(path string) (*models.GatewayConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("payment_path", "/checkout/v1/payment")
	v.SetDefault("timeout_seconds", 10)
	v.SetDefault("settled_statuses", []string{"settlement", "capture"})
	v.SetDefault("response_url_paths", []string{"response.payment.url", "payment.url", "url", "redirect_url"})

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read gateway config: %w", err)
	}

	var cfg models.GatewayConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gateway config: %w", err)
	}

	if cfg.Provider == "" {
		return nil, fmt.Errorf("gateway provider is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("gateway base_url is required")
	}

	return &cfg, nil
}
