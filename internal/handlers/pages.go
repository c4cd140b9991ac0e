package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/lamassu-studio/website/internal/components"
	"github.com/lamassu-studio/website/internal/config"
	"github.com/lamassu-studio/website/internal/host"
	"github.com/lamassu-studio/website/internal/keygate"
	"github.com/lamassu-studio/website/internal/metrics"
	"github.com/lamassu-studio/website/internal/order"
	"github.com/lamassu-studio/website/internal/session"
	"github.com/lamassu-studio/website/pkg/apperror"
	"github.com/lamassu-studio/website/pkg/logger"
)

var Module = fx.Module("handlers",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)

// settleWait is how long a page request waits for a fresh gate to settle
// before falling back to the loading screen.
const settleWait = 150 * time.Millisecond

const rateLimitedNotice = "تعداد درخواست‌ها زیاد است. لطفا چند دقیقه دیگر دوباره تلاش کنید."

// HandlerParams are the dependencies for creating a Handler
type HandlerParams struct {
	fx.In

	Config   *config.Config
	Sessions *session.Registry
	Provider *host.Provider
	Metrics  *metrics.Metrics
	Log      *slog.Logger
}

// Handler serves the site's pages and form actions
type Handler struct {
	sessions   *session.Registry
	keys       *host.KeyStore
	metrics    *metrics.Metrics
	orders     *ClientLimiter
	settleWait time.Duration
	log        *slog.Logger
}

// NewHandler creates a new page handler
func NewHandler(p HandlerParams) *Handler {
	return &Handler{
		sessions:   p.Sessions,
		keys:       p.Provider.Store(),
		metrics:    p.Metrics,
		orders:     NewClientLimiter(p.Config.Order.RateLimit, p.Config.Order.Burst),
		settleWait: settleWait,
		log:        p.Log.With(logger.Scope("handlers")),
	}
}

// LandingPage renders the screen for the visitor's gate state
func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Resolve(w, r)
	h.awaitSettle(s.Gate)

	h.render(w, r, http.StatusOK, components.GatePage{
		View: s.Gate.View(),
		Order: components.OrderFormState{
			Submitted: r.URL.Query().Get("ordered") == "1",
		},
	})
}

// SelectKey stages the submitted key and runs the gate's key selection
func (h *Handler) SelectKey(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		apperror.WriteJSON(w, r, h.log, apperror.NewBadRequest("malformed form body").WithInternal(err))
		return
	}

	s := h.sessions.Resolve(w, r)
	h.keys.Stage(s.ID, strings.TrimSpace(r.PostFormValue("api_key")))

	err := s.Gate.RequestKeySelection(r.Context())
	switch {
	case errors.Is(err, keygate.ErrSelectionUnavailable):
		h.render(w, r, http.StatusOK, components.GatePage{
			View:   s.Gate.View(),
			Notice: "قابلیت انتخاب کلید API در این محیط در دسترس نیست.",
		})
		return
	case err != nil:
		h.log.Debug("key selection ignored", slog.String("session", s.ID), logger.Error(err))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SubmitOrder validates and records an order form submission
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		apperror.WriteJSON(w, r, h.log, apperror.NewBadRequest("malformed form body").WithInternal(err))
		return
	}

	s := h.sessions.Resolve(w, r)
	if s.Gate.State() != keygate.KeySelected {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	req := order.FromForm(r.PostForm)

	if !h.orders.Allow(clientIP(r)) {
		h.metrics.OrderSubmitted("rate_limited")
		if wantsJSON(r) {
			apperror.WriteJSON(w, r, h.log, apperror.ErrRateLimited)
			return
		}
		h.render(w, r, http.StatusTooManyRequests, components.GatePage{
			View:  s.Gate.View(),
			Order: components.OrderFormState{Values: req, Notice: rateLimitedNotice},
		})
		return
	}

	if errs := req.Validate(); errs != nil {
		h.metrics.OrderSubmitted("invalid")
		if wantsJSON(r) {
			apperror.WriteJSON(w, r, h.log, apperror.NewValidation(errs))
			return
		}
		h.render(w, r, http.StatusUnprocessableEntity, components.GatePage{
			View:  s.Gate.View(),
			Order: components.OrderFormState{Values: req, Errors: errs},
		})
		return
	}

	h.metrics.OrderSubmitted("accepted")
	h.log.Info("order received",
		slog.String("session", s.ID),
		slog.String("package", req.Package),
		slog.String("name", req.Name),
		slog.String("phone", maskPhone(req.Phone)),
		slog.Int("description_len", len(req.Description)),
	)

	if wantsJSON(r) {
		writeJSON(w, http.StatusCreated, map[string]string{"status": "accepted"})
		return
	}
	http.Redirect(w, r, "/?ordered=1#order-form", http.StatusSeeOther)
}

// GateStateResponse describes a visitor's gate
type GateStateResponse struct {
	Session string `json:"session"`
	State   string `json:"state"`
	View    string `json:"view"`
	Outcome string `json:"outcome,omitempty"`
}

// GateState reports the gate of the session named by the request cookie
func (h *Handler) GateState(w http.ResponseWriter, r *http.Request) {
	id, ok := session.FromRequest(r)
	if !ok {
		apperror.WriteJSON(w, r, h.log, apperror.ErrNotFound.WithMessage("no session"))
		return
	}
	s, ok := h.sessions.Get(id)
	if !ok {
		apperror.WriteJSON(w, r, h.log, apperror.ErrNotFound.WithMessage("session expired"))
		return
	}

	state := s.Gate.State()
	writeJSON(w, http.StatusOK, GateStateResponse{
		Session: s.ID,
		State:   state.String(),
		View:    string(keygate.ViewFor(state)),
		Outcome: string(s.Gate.Outcome()),
	})
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) awaitSettle(g *keygate.Controller) {
	if h.settleWait <= 0 {
		return
	}
	timer := time.NewTimer(h.settleWait)
	defer timer.Stop()
	select {
	case <-g.Settled():
	case <-timer.C:
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page components.GatePage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := components.Page(page).Render(w); err != nil {
		h.log.Error("failed to render page",
			slog.String("path", r.URL.Path),
			slog.String("view", string(page.View)),
			logger.Error(err),
		)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func maskPhone(p string) string {
	if len(p) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(p)-4) + p[len(p)-4:]
}
