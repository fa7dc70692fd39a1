// Package config loads process configuration from environment variables.
//
// Configuration is parsed once at startup into an explicit struct and
// passed to constructors; nothing reads the environment past this point.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Ahmed-Anwar-PMO/notesync/internal/notesync"
	"github.com/Ahmed-Anwar-PMO/notesync/internal/token"
)

// Config carries everything the sync pipeline needs: collaborator
// endpoints, credentials, and the order-token shape.
type Config struct {
	ZendeskSubdomain string `env:"ZENDESK_SUBDOMAIN"`
	ZendeskEmail     string `env:"ZENDESK_EMAIL"`
	ZendeskAPIToken  string `env:"ZENDESK_API_TOKEN"`

	ShopifyStore      string `env:"SHOPIFY_STORE"`
	ShopifyAdminToken string `env:"SHOPIFY_ADMIN_TOKEN"`
	ShopifyAPIVersion string `env:"SHOPIFY_API_VERSION" envDefault:"2024-01"`

	// HTTPTimeout bounds each collaborator request.
	HTTPTimeout time.Duration `env:"NOTESYNC_HTTP_TIMEOUT" envDefault:"10s"`

	// OrderPrefix and OrderDigits describe the order-token shape.
	OrderPrefix string `env:"NOTESYNC_ORDER_PREFIX" envDefault:"A"`
	OrderDigits int    `env:"NOTESYNC_ORDER_DIGITS" envDefault:"6"`
}

// Load parses configuration from the environment. It does not validate
// presence; call Validate before using credentials.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports every missing required variable in a single error so
// an operator fixes the environment in one pass. It runs before any
// network call.
func (c Config) Validate() error {
	var missing []string
	for _, v := range []struct {
		name  string
		value string
	}{
		{"ZENDESK_SUBDOMAIN", c.ZendeskSubdomain},
		{"ZENDESK_EMAIL", c.ZendeskEmail},
		{"ZENDESK_API_TOKEN", c.ZendeskAPIToken},
		{"SHOPIFY_STORE", c.ShopifyStore},
		{"SHOPIFY_ADMIN_TOKEN", c.ShopifyAdminToken},
	} {
		if strings.TrimSpace(v.value) == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return notesync.NewError(notesync.CodeConfigMissing,
			"missing environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// TokenPattern returns the configured order-token shape.
func (c Config) TokenPattern() token.Pattern {
	return token.Pattern{Prefix: c.OrderPrefix, Digits: c.OrderDigits}
}
