package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"sitekit/internal/domain"
)

// Chat backends the feedback relay can forward to.
const (
	BackendTelegram = "telegram"
	BackendDiscord  = "discord"
	BackendSlack    = "slack"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Backend selects the chat API feedback is forwarded to.
	Backend string `env:"FEEDBACK_BACKEND" envDefault:"telegram"`

	TelegramToken  string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `env:"TELEGRAM_CHAT_ID"`

	DiscordToken     string `env:"DISCORD_BOT_TOKEN"`
	DiscordChannelID string `env:"DISCORD_CHANNEL_ID"`

	SlackToken     string `env:"SLACK_BOT_TOKEN"`
	SlackChannelID string `env:"SLACK_CHANNEL_ID"`

	// AllowedOrigins is the CORS allow-list: exact origins, or "*".
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`
}

// Load reads configuration from the environment (and an optional .env file)
// and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment itself
	// (Docker, CI, a platform dashboard).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendTelegram, BackendDiscord, BackendSlack:
	default:
		return fmt.Errorf("config: FEEDBACK_BACKEND %q: %w", c.Backend, domain.ErrUnsupportedBackend)
	}

	if c.DiscordChannelID != "" {
		for _, r := range c.DiscordChannelID {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: DISCORD_CHANNEL_ID must be a numeric channel snowflake")
			}
		}
	}

	if !domain.IsSupported(c.DefaultLocale) {
		return fmt.Errorf("config: DEFAULT_LOCALE %q is not a supported locale", c.DefaultLocale)
	}

	for i, origin := range c.AllowedOrigins {
		c.AllowedOrigins[i] = strings.TrimSpace(origin)
	}
	return nil
}

// RelayConfigured reports whether the selected backend has the credentials
// it needs to deliver feedback.
func (c *Config) RelayConfigured() bool {
	tokenSet, chatSet := c.CredentialFlags()
	return tokenSet && chatSet
}

// CredentialFlags reports, for the selected backend, whether the bot token
// and the target chat/channel are configured. Surfaced by the diagnostics
// endpoint without leaking the values themselves.
func (c *Config) CredentialFlags() (tokenSet, chatSet bool) {
	switch c.Backend {
	case BackendTelegram:
		return c.TelegramToken != "", c.TelegramChatID != 0
	case BackendDiscord:
		return c.DiscordToken != "", c.DiscordChannelID != ""
	case BackendSlack:
		return c.SlackToken != "", c.SlackChannelID != ""
	}
	return false, false
}

// AllowAllOrigins reports whether the CORS allow-list contains the wildcard.
func (c *Config) AllowAllOrigins() bool {
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
