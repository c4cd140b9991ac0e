// Package host provides the key capability the gate consumes: a per-session
// key check and a key selection flow, optionally verified against Gemini.
package host

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/lamassu-studio/website/internal/config"
	"github.com/lamassu-studio/website/internal/keygate"
	"github.com/lamassu-studio/website/pkg/logger"
)

var Module = fx.Module("host",
	fx.Provide(
		NewKeyStore,
		NewVerifier,
		NewProvider,
	),
)

// ErrNothingStaged is returned by the selection flow when the session
// submitted no key.
var ErrNothingStaged = errors.New("no key was submitted")

// NewVerifier returns a Gemini verifier when verification is enabled, and nil
// otherwise.
func NewVerifier(cfg *config.Config, log *slog.Logger) (Verifier, error) {
	if !cfg.Gemini.VerificationEnabled() {
		return nil, nil
	}
	v, err := NewGeminiVerifier(GeminiConfig{
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
	}, log.With(logger.Scope("gemini")))
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Provider builds the host capability for each session.
type Provider struct {
	enabled       bool
	serverKey     string
	verifyTimeout time.Duration
	store         *KeyStore
	verifier      Verifier
	log           *slog.Logger
}

// NewProvider creates a capability provider
func NewProvider(cfg *config.Config, store *KeyStore, verifier Verifier, log *slog.Logger) *Provider {
	return &Provider{
		enabled:       cfg.Gate.HostCapability,
		serverKey:     cfg.Gemini.APIKey,
		verifyTimeout: cfg.Gemini.VerifyTimeout,
		store:         store,
		verifier:      verifier,
		log:           log.With(logger.Scope("host")),
	}
}

// Store returns the key store backing the provider
func (p *Provider) Store() *KeyStore {
	return p.store
}

// For returns the capability surface for a session. When the capability is
// disabled both functions are nil.
func (p *Provider) For(session string) keygate.Host {
	if !p.enabled {
		return keygate.Host{}
	}
	return keygate.Host{
		HasSelectedAPIKey: func(ctx context.Context) (bool, error) {
			return p.hasSelectedAPIKey(ctx, session)
		},
		OpenSelectKey: func(ctx context.Context) error {
			return p.openSelectKey(ctx, session)
		},
	}
}

func (p *Provider) hasSelectedAPIKey(ctx context.Context, session string) (bool, error) {
	key, ok := p.store.Selected(session)
	if !ok {
		key = p.serverKey
	}
	if key == "" {
		return false, nil
	}
	if p.verifier == nil {
		return true, nil
	}

	if p.verifyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.verifyTimeout)
		defer cancel()
	}

	if err := p.verifier.Verify(ctx, key); err != nil {
		if errors.Is(err, ErrKeyRejected) {
			p.log.Info("selected key was rejected", slog.String("session", session))
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (p *Provider) openSelectKey(_ context.Context, session string) error {
	if !p.store.Commit(session) {
		return ErrNothingStaged
	}
	return nil
}
