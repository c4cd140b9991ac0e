package keygate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 50 * time.Millisecond

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestController(host Host, opts ...Option) *Controller {
	opts = append([]Option{WithTimeout(testTimeout), WithLogger(quietLogger())}, opts...)
	return NewController(host, opts...)
}

func checkReturning(ok bool, err error) CheckFunc {
	return func(context.Context) (bool, error) { return ok, err }
}

// hangingCheck blocks until the test ends.
func hangingCheck(t *testing.T) CheckFunc {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	return func(context.Context) (bool, error) {
		<-release
		return true, nil
	}
}

type recordingObserver struct {
	mu         sync.Mutex
	outcomes   []Outcome
	selections []bool
}

func (o *recordingObserver) CheckCompleted(outcome Outcome, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
}

func (o *recordingObserver) SelectionRequested(available bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.selections = append(o.selections, available)
}

func TestInitialize_Outcomes(t *testing.T) {
	tests := []struct {
		name        string
		host        func(t *testing.T) Host
		wantState   State
		wantOutcome Outcome
	}{
		{
			name:        "key present",
			host:        func(*testing.T) Host { return Host{HasSelectedAPIKey: checkReturning(true, nil)} },
			wantState:   KeySelected,
			wantOutcome: OutcomeSelected,
		},
		{
			name:        "key absent",
			host:        func(*testing.T) Host { return Host{HasSelectedAPIKey: checkReturning(false, nil)} },
			wantState:   KeyMissing,
			wantOutcome: OutcomeMissing,
		},
		{
			name:        "check errors",
			host:        func(*testing.T) Host { return Host{HasSelectedAPIKey: checkReturning(true, errors.New("host exploded"))} },
			wantState:   KeyMissing,
			wantOutcome: OutcomeError,
		},
		{
			name: "check panics",
			host: func(*testing.T) Host {
				return Host{HasSelectedAPIKey: func(context.Context) (bool, error) { panic("host bug") }}
			},
			wantState:   KeyMissing,
			wantOutcome: OutcomeError,
		},
		{
			name:        "check hangs",
			host:        func(t *testing.T) Host { return Host{HasSelectedAPIKey: hangingCheck(t)} },
			wantState:   KeyMissing,
			wantOutcome: OutcomeTimeout,
		},
		{
			name:        "capability absent",
			host:        func(*testing.T) Host { return Host{} },
			wantState:   KeyMissing,
			wantOutcome: OutcomeUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := &recordingObserver{}
			c := newTestController(tt.host(t), WithObserver(obs))
			require.Equal(t, Checking, c.State())

			start := time.Now()
			got := c.Initialize(context.Background())
			elapsed := time.Since(start)

			assert.Equal(t, tt.wantState, got)
			assert.Equal(t, tt.wantState, c.State())
			assert.Equal(t, tt.wantOutcome, c.Outcome())
			assert.Less(t, elapsed, testTimeout+time.Second, "initialize must be bounded by the timeout")
			assert.Equal(t, []Outcome{tt.wantOutcome}, obs.outcomes)

			select {
			case <-c.Settled():
			default:
				t.Fatal("Settled() should be closed after Initialize")
			}
		})
	}
}

func TestInitialize_AbsentCapabilitySchedulesNoTimer(t *testing.T) {
	c := newTestController(Host{})
	var timers atomic.Int32
	c.newTimer = func(d time.Duration) *time.Timer {
		timers.Add(1)
		return time.NewTimer(d)
	}

	assert.Equal(t, KeyMissing, c.Initialize(context.Background()))
	assert.Zero(t, timers.Load())
}

func TestInitialize_PresentCapabilitySchedulesOneTimer(t *testing.T) {
	c := newTestController(Host{HasSelectedAPIKey: checkReturning(true, nil)})
	var timers atomic.Int32
	c.newTimer = func(d time.Duration) *time.Timer {
		timers.Add(1)
		return time.NewTimer(d)
	}

	c.Initialize(context.Background())
	assert.Equal(t, int32(1), timers.Load())
}

func TestInitialize_LateResultIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	finished := make(chan struct{})
	host := Host{HasSelectedAPIKey: func(context.Context) (bool, error) {
		defer close(finished)
		<-release
		return true, nil
	}}
	c := newTestController(host)

	require.Equal(t, KeyMissing, c.Initialize(context.Background()))
	require.Equal(t, OutcomeTimeout, c.Outcome())

	close(release)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("abandoned check never returned")
	}

	// Give the abandoned goroutine a moment to deliver into its buffer.
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, KeyMissing, c.State())
	assert.Equal(t, OutcomeTimeout, c.Outcome())
}

func TestInitialize_RunsCheckOnce(t *testing.T) {
	var calls atomic.Int32
	c := newTestController(Host{HasSelectedAPIKey: func(context.Context) (bool, error) {
		calls.Add(1)
		return false, nil
	}})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Initialize(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, KeyMissing, c.State())
}

func TestInitialize_CallerCancellationDoesNotCancelCheck(t *testing.T) {
	var sawCancel atomic.Bool
	c := newTestController(Host{HasSelectedAPIKey: func(ctx context.Context) (bool, error) {
		sawCancel.Store(ctx.Err() != nil)
		return true, nil
	}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, KeySelected, c.Initialize(ctx))
	assert.False(t, sawCancel.Load())
}

func TestInitialize_ErrorIsCapabilityError(t *testing.T) {
	cause := errors.New("bridge closed")
	c := newTestController(Host{HasSelectedAPIKey: checkReturning(false, cause)})

	outcome, err := c.check(context.Background())
	assert.Equal(t, OutcomeError, outcome)

	var capErr *CapabilityError
	require.ErrorAs(t, err, &capErr)
	assert.ErrorIs(t, err, cause)
}

func TestRequestKeySelection(t *testing.T) {
	tests := []struct {
		name   string
		result error
	}{
		{"flow succeeds", nil},
		{"flow reports failure", errors.New("user closed dialog")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opened atomic.Int32
			obs := &recordingObserver{}
			c := newTestController(Host{
				HasSelectedAPIKey: checkReturning(false, nil),
				OpenSelectKey: func(context.Context) error {
					opened.Add(1)
					return tt.result
				},
			}, WithObserver(obs))
			require.Equal(t, KeyMissing, c.Initialize(context.Background()))

			require.NoError(t, c.RequestKeySelection(context.Background()))
			assert.Equal(t, KeySelected, c.State())
			assert.Equal(t, ViewReady, c.View())
			assert.Equal(t, int32(1), opened.Load())
			assert.Equal(t, []bool{true}, obs.selections)
		})
	}
}

func TestRequestKeySelection_Unavailable(t *testing.T) {
	obs := &recordingObserver{}
	c := newTestController(Host{HasSelectedAPIKey: checkReturning(false, nil)}, WithObserver(obs))
	require.Equal(t, KeyMissing, c.Initialize(context.Background()))

	var err error
	assert.NotPanics(t, func() { err = c.RequestKeySelection(context.Background()) })
	assert.ErrorIs(t, err, ErrSelectionUnavailable)
	assert.Equal(t, KeyMissing, c.State())
	assert.Equal(t, []bool{false}, obs.selections)
}

func TestRequestKeySelection_OutsideKeyMissing(t *testing.T) {
	var opened atomic.Int32
	open := func(context.Context) error {
		opened.Add(1)
		return nil
	}

	t.Run("while checking", func(t *testing.T) {
		obs := &recordingObserver{}
		c := newTestController(Host{HasSelectedAPIKey: hangingCheck(t), OpenSelectKey: open}, WithObserver(obs))

		err := c.RequestKeySelection(context.Background())
		assert.ErrorIs(t, err, ErrNotAwaitingSelection)
		assert.Equal(t, Checking, c.State())
		assert.Empty(t, obs.selections, "ignored requests are not observed")
	})

	t.Run("already selected", func(t *testing.T) {
		obs := &recordingObserver{}
		c := newTestController(Host{HasSelectedAPIKey: checkReturning(true, nil), OpenSelectKey: open}, WithObserver(obs))
		require.Equal(t, KeySelected, c.Initialize(context.Background()))

		err := c.RequestKeySelection(context.Background())
		assert.ErrorIs(t, err, ErrNotAwaitingSelection)
		assert.Equal(t, KeySelected, c.State())
		assert.Empty(t, obs.selections, "ignored requests are not observed")
	})

	assert.Zero(t, opened.Load())
}

func TestViewFor(t *testing.T) {
	assert.Equal(t, ViewLoading, ViewFor(Checking))
	assert.Equal(t, ViewNeedsKey, ViewFor(KeyMissing))
	assert.Equal(t, ViewReady, ViewFor(KeySelected))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "checking", Checking.String())
	assert.Equal(t, "key_missing", KeyMissing.String())
	assert.Equal(t, "key_selected", KeySelected.String())
	assert.Equal(t, "unknown", State(42).String())
}
