package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientLimiter(t *testing.T) {
	clock := time.Now()
	l := NewClientLimiter(6, 2)
	l.now = func() time.Time { return clock }

	assert.True(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"), "burst exhausted")
	assert.True(t, l.Allow("5.6.7.8"), "clients are limited independently")

	clock = clock.Add(10 * time.Second)
	assert.True(t, l.Allow("1.2.3.4"), "one token refills every 10s at 6/min")
	assert.False(t, l.Allow("1.2.3.4"))
}

func TestClientLimiter_SweepsIdleClients(t *testing.T) {
	clock := time.Now()
	l := NewClientLimiter(1, 1)
	l.now = func() time.Time { return clock }

	l.Allow("a")
	clock = clock.Add(limiterIdleTTL + 2*time.Minute)
	l.Allow("b")

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.clients, "a")
	assert.Contains(t, l.clients, "b")
}
