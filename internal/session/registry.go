// Package session binds a browser session cookie to that visitor's key gate.
// A new session counts as a page mount: its gate starts checking immediately.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/simplelru"
	"go.uber.org/fx"

	"github.com/lamassu-studio/website/internal/config"
	"github.com/lamassu-studio/website/internal/host"
	"github.com/lamassu-studio/website/internal/keygate"
	"github.com/lamassu-studio/website/internal/metrics"
	"github.com/lamassu-studio/website/pkg/logger"
)

var Module = fx.Module("session",
	fx.Provide(
		NewGateFactory,
		NewRegistry,
	),
)

// CookieName is the session cookie set on every visitor
const CookieName = "lamassu_session"

// GateFactory builds the gate for a new session
type GateFactory func(sessionID string) *keygate.Controller

// NewGateFactory wires each gate to the session's host capability
func NewGateFactory(cfg *config.Config, provider *host.Provider, m *metrics.Metrics, log *slog.Logger) GateFactory {
	return func(sessionID string) *keygate.Controller {
		return keygate.NewController(provider.For(sessionID),
			keygate.WithTimeout(cfg.Gate.KeyCheckTimeout),
			keygate.WithLogger(log.With(slog.String("session", sessionID))),
			keygate.WithObserver(m),
		)
	}
}

// Session is one visitor's gate
type Session struct {
	ID   string
	Gate *keygate.Controller

	lastSeen time.Time
}

// RegistryParams are the dependencies for creating a Registry
type RegistryParams struct {
	fx.In

	Config   *config.Config
	NewGate  GateFactory
	Provider *host.Provider
	Metrics  *metrics.Metrics
	Log      *slog.Logger
}

// Registry tracks live sessions in least-recently-seen order. Idle sessions
// expire after the TTL, and the least recently seen session is evicted once
// the registry is full.
type Registry struct {
	mu       sync.Mutex
	sessions *simplelru.LRU[string, *Session]

	ttl          time.Duration
	secure       bool
	newGate      GateFactory
	onExpire     func(id string)
	onSizeChange func(n int)
	now          func() time.Time
	log          *slog.Logger
}

// NewRegistry creates an empty session registry
func NewRegistry(p RegistryParams) (*Registry, error) {
	store := p.Provider.Store()
	r := &Registry{
		ttl:          p.Config.Gate.SessionTTL,
		secure:       p.Config.Gate.SecureCookie,
		newGate:      p.NewGate,
		onExpire:     store.Forget,
		onSizeChange: func(n int) { p.Metrics.SessionsActive.Set(float64(n)) },
		now:          time.Now,
		log:          p.Log.With(logger.Scope("session")),
	}

	sessions, err := simplelru.NewLRU[string, *Session](p.Config.Gate.MaxSessions, r.evicted)
	if err != nil {
		return nil, fmt.Errorf("session registry: %w", err)
	}
	r.sessions = sessions
	return r, nil
}

// evicted runs for every session leaving the registry, expired or pushed out.
func (r *Registry) evicted(id string, _ *Session) {
	if r.onExpire != nil {
		r.onExpire(id)
	}
}

// Get returns a live session and refreshes its idle timer
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked()

	s, ok := r.sessions.Get(id)
	if ok {
		s.lastSeen = r.now()
	}
	return s, ok
}

// Create starts a new session and begins its gate check in the background.
// A full registry evicts its least recently seen session.
func (r *Registry) Create(ctx context.Context) *Session {
	id := uuid.NewString()
	s := &Session{
		ID:       id,
		Gate:     r.newGate(id),
		lastSeen: r.now(),
	}

	r.mu.Lock()
	r.sweepLocked()
	if r.sessions.Add(id, s) {
		r.log.Debug("session registry full, evicted least recently seen")
	}
	n := r.sessions.Len()
	r.mu.Unlock()

	if r.onSizeChange != nil {
		r.onSizeChange(n)
	}
	r.log.Debug("session created", slog.String("session", id))

	go s.Gate.Initialize(context.WithoutCancel(ctx))
	return s
}

// Resolve returns the request's session, creating one and setting the cookie
// when the request carries none or an expired one.
func (r *Registry) Resolve(w http.ResponseWriter, req *http.Request) *Session {
	if id, ok := FromRequest(req); ok {
		if s, ok := r.Get(id); ok {
			return s
		}
	}
	s := r.Create(req.Context())
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return s
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions.Len()
}

// sweepLocked drops expired sessions from the oldest end and stops at the
// first live one.
func (r *Registry) sweepLocked() {
	if r.ttl <= 0 {
		return
	}
	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for {
		_, s, ok := r.sessions.GetOldest()
		if !ok || !s.lastSeen.Before(cutoff) {
			break
		}
		r.sessions.RemoveOldest()
		removed++
	}
	if removed > 0 {
		r.log.Debug("expired idle sessions", slog.Int("count", removed))
		if r.onSizeChange != nil {
			r.onSizeChange(r.sessions.Len())
		}
	}
}

// FromRequest extracts a well-formed session ID from the request cookie
func FromRequest(req *http.Request) (string, bool) {
	c, err := req.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return "", false
	}
	return c.Value, true
}
