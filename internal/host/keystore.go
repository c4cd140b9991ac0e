package host

import "sync"

// KeyStore holds API keys per browser session. A key is first staged from the
// selection form and becomes selected when the selection flow commits it.
type KeyStore struct {
	mu       sync.Mutex
	staged   map[string]string
	selected map[string]string
}

// NewKeyStore creates an empty key store
func NewKeyStore() *KeyStore {
	return &KeyStore{
		staged:   make(map[string]string),
		selected: make(map[string]string),
	}
}

// Stage records a key submitted by a session without selecting it.
// An empty key clears anything staged.
func (s *KeyStore) Stage(session, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key == "" {
		delete(s.staged, session)
		return
	}
	s.staged[session] = key
}

// Commit promotes the staged key to selected. It reports false when nothing
// was staged.
func (s *KeyStore) Commit(session string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, ok := s.staged[session]
	if !ok {
		return false
	}
	delete(s.staged, session)
	s.selected[session] = key
	return true
}

// Selected returns the session's selected key
func (s *KeyStore) Selected(session string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, ok := s.selected[session]
	return key, ok
}

// Forget drops all keys held for a session
func (s *KeyStore) Forget(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.staged, session)
	delete(s.selected, session)
}
