package host

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamassu-studio/website/internal/config"
)

type fakeVerifier struct {
	err  error
	keys []string
}

func (f *fakeVerifier) Verify(_ context.Context, key string) error {
	f.keys = append(f.keys, key)
	return f.err
}

func testConfig() *config.Config {
	return &config.Config{
		Gate:   config.GateConfig{HostCapability: true},
		Gemini: config.GeminiConfig{VerifyTimeout: time.Second},
	}
}

func newTestProvider(cfg *config.Config, v Verifier) *Provider {
	return NewProvider(cfg, NewKeyStore(), v, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestProvider_DisabledCapabilityIsAbsent(t *testing.T) {
	cfg := testConfig()
	cfg.Gate.HostCapability = false

	h := newTestProvider(cfg, nil).For("s1")
	assert.Nil(t, h.HasSelectedAPIKey)
	assert.Nil(t, h.OpenSelectKey)
}

func TestProvider_NoKey(t *testing.T) {
	h := newTestProvider(testConfig(), nil).For("s1")

	ok, err := h.HasSelectedAPIKey(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProvider_ServerKeyCountsForEverySession(t *testing.T) {
	cfg := testConfig()
	cfg.Gemini.APIKey = "server-key"
	p := newTestProvider(cfg, nil)

	for _, session := range []string{"a", "b"} {
		ok, err := p.For(session).HasSelectedAPIKey(context.Background())
		require.NoError(t, err)
		assert.True(t, ok, "session %s", session)
	}
}

func TestProvider_SelectionFlow(t *testing.T) {
	p := newTestProvider(testConfig(), nil)
	h := p.For("s1")

	assert.ErrorIs(t, h.OpenSelectKey(context.Background()), ErrNothingStaged)

	p.Store().Stage("s1", "user-key")
	require.NoError(t, h.OpenSelectKey(context.Background()))

	ok, err := h.HasSelectedAPIKey(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	other, err := p.For("s2").HasSelectedAPIKey(context.Background())
	require.NoError(t, err)
	assert.False(t, other, "keys must not leak across sessions")
}

func TestProvider_Verification(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantOK  bool
		wantErr bool
	}{
		{"accepted", nil, true, false},
		{"rejected", ErrKeyRejected, false, false},
		{"wrapped rejection", errors.Join(errors.New("403"), ErrKeyRejected), false, false},
		{"network failure", errors.New("dial tcp: timeout"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &fakeVerifier{err: tt.err}
			p := newTestProvider(testConfig(), v)
			p.Store().Stage("s1", "user-key")
			require.True(t, p.Store().Commit("s1"))

			ok, err := p.For("s1").HasSelectedAPIKey(context.Background())
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, []string{"user-key"}, v.keys)
		})
	}
}

func TestNewVerifier_DisabledReturnsNil(t *testing.T) {
	v, err := NewVerifier(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestNewVerifier_Enabled(t *testing.T) {
	cfg := testConfig()
	cfg.Gemini.VerifyKeys = true
	cfg.Gemini.Model = "gemini-2.5-flash"

	v, err := NewVerifier(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.IsType(t, &GeminiVerifier{}, v)
}
