package keygate

import "context"

// CheckFunc reports whether a key has already been selected.
// It may error or block indefinitely.
type CheckFunc func(ctx context.Context) (bool, error)

// SelectFunc runs the host's key selection flow. Its result is not inspected.
type SelectFunc func(ctx context.Context) error

// Host is the capability surface the gate consumes. A nil function means the
// host does not provide it.
type Host struct {
	HasSelectedAPIKey CheckFunc
	OpenSelectKey     SelectFunc
}
