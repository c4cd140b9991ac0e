package config

import (
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all website configuration
type Config struct {
	// Server settings
	Port          string `env:"WEBSITE_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:""`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`

	// Take the client address from X-Forwarded-For / X-Real-IP. Only enable
	// behind a proxy that overwrites these headers.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	Gate   GateConfig
	Gemini GeminiConfig
	Order  OrderConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// GateConfig controls the API-key gate in front of the site
type GateConfig struct {
	// How long the capability check may run before the key is treated as missing
	KeyCheckTimeout time.Duration `env:"KEY_CHECK_TIMEOUT" envDefault:"2s"`

	// Idle sessions older than this are dropped
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	// Live sessions kept at once; the least recently seen is evicted beyond this
	MaxSessions int `env:"SESSION_MAX" envDefault:"10000"`

	// When false the host exposes neither the key check nor key selection
	HostCapability bool `env:"HOST_CAPABILITY" envDefault:"true"`

	// Mark the session cookie Secure (set behind TLS)
	SecureCookie bool `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

// GeminiConfig holds the optional Gemini API settings used to verify keys
type GeminiConfig struct {
	// Server-wide key; when set every session counts as having a key
	APIKey string `env:"GEMINI_API_KEY" envDefault:""`

	// Verify selected keys against the Gemini API
	VerifyKeys bool `env:"GEMINI_VERIFY_KEYS" envDefault:"false"`

	// Model looked up during verification
	Model string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// Endpoint override, mostly for tests and proxies
	BaseURL string `env:"GEMINI_BASE_URL" envDefault:""`

	// Upper bound for a single verification call, capped at KEY_CHECK_TIMEOUT
	VerifyTimeout time.Duration `env:"GEMINI_VERIFY_TIMEOUT" envDefault:"2s"`
}

// OrderConfig holds order form settings
type OrderConfig struct {
	// Submissions allowed per client per minute
	RateLimit int `env:"ORDER_RATE_LIMIT" envDefault:"5"`

	// Burst of submissions allowed above the steady rate
	Burst int `env:"ORDER_RATE_BURST" envDefault:"2"`
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	port := strings.TrimPrefix(c.Port, ":")
	return net.JoinHostPort(c.ServerAddress, port)
}

// IsProduction reports whether the site runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// VerificationEnabled returns true if selected keys should be checked remotely
func (g *GeminiConfig) VerificationEnabled() bool {
	return g.VerifyKeys && g.Model != ""
}

// NewConfig parses configuration from the environment
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Gate.KeyCheckTimeout <= 0 {
		return nil, fmt.Errorf("KEY_CHECK_TIMEOUT must be positive, got %s", cfg.Gate.KeyCheckTimeout)
	}
	if cfg.Gate.MaxSessions <= 0 {
		return nil, fmt.Errorf("SESSION_MAX must be positive, got %d", cfg.Gate.MaxSessions)
	}
	if cfg.Order.RateLimit <= 0 {
		return nil, fmt.Errorf("ORDER_RATE_LIMIT must be positive, got %d", cfg.Order.RateLimit)
	}

	// Verification must end no later than the gate's check.
	if cfg.Gemini.VerifyTimeout <= 0 || cfg.Gemini.VerifyTimeout > cfg.Gate.KeyCheckTimeout {
		log.Warn("capping GEMINI_VERIFY_TIMEOUT at KEY_CHECK_TIMEOUT",
			slog.Duration("verify_timeout", cfg.Gemini.VerifyTimeout),
			slog.Duration("key_check_timeout", cfg.Gate.KeyCheckTimeout),
		)
		cfg.Gemini.VerifyTimeout = cfg.Gate.KeyCheckTimeout
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("addr", cfg.Addr()),
		slog.Duration("key_check_timeout", cfg.Gate.KeyCheckTimeout),
		slog.Bool("host_capability", cfg.Gate.HostCapability),
		slog.Int("max_sessions", cfg.Gate.MaxSessions),
		slog.Bool("trust_proxy_headers", cfg.TrustProxyHeaders),
		slog.Bool("gemini_verify", cfg.Gemini.VerificationEnabled()),
	)

	return cfg, nil
}
