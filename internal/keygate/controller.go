// Package keygate decides whether the site may render its content by asking
// the host whether an API key has been selected. The check races a timeout and
// every failure collapses to KeyMissing, so the gate never stays in Checking.
package keygate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lamassu-studio/website/pkg/logger"
)

// DefaultTimeout bounds the initial key check.
const DefaultTimeout = 2 * time.Second

// Observer receives gate events. Implementations must not block.
type Observer interface {
	CheckCompleted(outcome Outcome, elapsed time.Duration)
	SelectionRequested(available bool)
}

// Option configures a Controller
type Option func(*Controller)

// WithTimeout sets how long the key check may run
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		c.log = log.With(logger.Scope("keygate"))
	}
}

// WithObserver registers an observer for check and selection events
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		c.observer = o
	}
}

// Controller owns one gate's state. It is the only writer; views read it
// through State.
type Controller struct {
	host     Host
	timeout  time.Duration
	log      *slog.Logger
	observer Observer

	// newTimer is swapped in tests to count scheduled timers.
	newTimer func(time.Duration) *time.Timer

	mu      sync.Mutex
	state   State
	outcome Outcome

	initOnce sync.Once
	settled  chan struct{}
}

// NewController creates a gate in the Checking state.
func NewController(host Host, opts ...Option) *Controller {
	c := &Controller{
		host:     host,
		timeout:  DefaultTimeout,
		log:      slog.Default().With(logger.Scope("keygate")),
		newTimer: time.NewTimer,
		state:    Checking,
		settled:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current gate state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View returns the screen for the current state.
func (c *Controller) View() View {
	return ViewFor(c.State())
}

// Outcome returns why the initial check settled, or "" while Checking.
func (c *Controller) Outcome() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome
}

// Settled is closed once the gate has left Checking.
func (c *Controller) Settled() <-chan struct{} {
	return c.settled
}

// Initialize runs the key check once and returns the resulting state.
// Later calls return the current state without checking again.
//
// It returns within the configured timeout whatever the host does. A check
// that settles after the timeout is discarded.
func (c *Controller) Initialize(ctx context.Context) State {
	c.initOnce.Do(func() {
		start := time.Now()
		outcome, err := c.check(ctx)
		elapsed := time.Since(start)

		next := KeyMissing
		if outcome == OutcomeSelected {
			next = KeySelected
		}

		attrs := []any{
			slog.String("outcome", string(outcome)),
			slog.String("state", next.String()),
			slog.Duration("elapsed", elapsed),
		}
		if err != nil {
			attrs = append(attrs, logger.Error(err))
			c.log.Warn("key check did not confirm a key", attrs...)
		} else {
			c.log.Debug("key check settled", attrs...)
		}

		// Observers run before Settled closes so waiters see them.
		if c.observer != nil {
			c.observer.CheckCompleted(outcome, elapsed)
		}
		c.settle(next, outcome)
	})
	return c.State()
}

type checkResult struct {
	ok  bool
	err error
}

// check races the host's key check against the timeout.
func (c *Controller) check(ctx context.Context) (Outcome, error) {
	if c.host.HasSelectedAPIKey == nil {
		return OutcomeUnavailable, ErrCapabilityUnavailable
	}

	// Buffered so an abandoned check can still deliver and exit.
	results := make(chan checkResult, 1)
	checkCtx := context.WithoutCancel(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				results <- checkResult{err: fmt.Errorf("panic in key check: %v", r)}
			}
		}()
		ok, err := c.host.HasSelectedAPIKey(checkCtx)
		results <- checkResult{ok: ok, err: err}
	}()

	timer := c.newTimer(c.timeout)
	defer timer.Stop()

	select {
	case res := <-results:
		switch {
		case res.err != nil:
			return OutcomeError, &CapabilityError{Err: res.err}
		case res.ok:
			return OutcomeSelected, nil
		default:
			return OutcomeMissing, nil
		}
	case <-timer.C:
		return OutcomeTimeout, ErrCapabilityTimeout
	}
}

func (c *Controller) settle(next State, outcome Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Checking {
		return
	}
	c.state = next
	c.outcome = outcome
	close(c.settled)
}

func (c *Controller) observeSelection(available bool) {
	if c.observer != nil {
		c.observer.SelectionRequested(available)
	}
}

// RequestKeySelection runs the host's selection flow and then marks the key
// as selected, whatever the flow reported. It is only valid from KeyMissing.
//
// ErrSelectionUnavailable is returned, with no transition, when the host has
// no selection flow. Requests outside KeyMissing are not reported to the
// observer.
func (c *Controller) RequestKeySelection(ctx context.Context) error {
	if c.host.OpenSelectKey == nil {
		c.observeSelection(false)
		c.log.Warn("key selection requested but host has no selection flow")
		return ErrSelectionUnavailable
	}

	if state := c.State(); state != KeyMissing {
		return fmt.Errorf("%w: state is %s", ErrNotAwaitingSelection, state)
	}
	c.observeSelection(true)

	if err := c.host.OpenSelectKey(ctx); err != nil {
		c.log.Debug("key selection flow reported an error", logger.Error(err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == KeyMissing {
		c.state = KeySelected
		c.log.Info("key selected")
	}
	return nil
}
