package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyStore(t *testing.T) {
	s := NewKeyStore()

	_, ok := s.Selected("s1")
	assert.False(t, ok)
	assert.False(t, s.Commit("s1"), "nothing staged yet")

	s.Stage("s1", "k1")
	_, ok = s.Selected("s1")
	assert.False(t, ok, "staging alone must not select")

	assert.True(t, s.Commit("s1"))
	key, ok := s.Selected("s1")
	assert.True(t, ok)
	assert.Equal(t, "k1", key)
	assert.False(t, s.Commit("s1"), "staged key is consumed by commit")

	s.Stage("s1", "k2")
	s.Stage("s1", "")
	assert.False(t, s.Commit("s1"), "empty stage clears")

	s.Forget("s1")
	_, ok = s.Selected("s1")
	assert.False(t, ok)
}
