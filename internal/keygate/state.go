package keygate

// State is the gate's position. Exactly one is active at a time.
type State int

const (
	// Checking is the initial state while the capability check is pending.
	Checking State = iota
	// KeyMissing is terminal until the user selects a key.
	KeyMissing
	// KeySelected is terminal.
	KeySelected
)

func (s State) String() string {
	switch s {
	case Checking:
		return "checking"
	case KeyMissing:
		return "key_missing"
	case KeySelected:
		return "key_selected"
	default:
		return "unknown"
	}
}

// View names the screen rendered for a state.
type View string

const (
	ViewLoading  View = "loading"
	ViewNeedsKey View = "needs-key"
	ViewReady    View = "ready"
)

// ViewFor maps a state to the screen that shows it.
func ViewFor(s State) View {
	switch s {
	case KeySelected:
		return ViewReady
	case KeyMissing:
		return ViewNeedsKey
	default:
		return ViewLoading
	}
}

// Outcome records why the initial check left Checking.
type Outcome string

const (
	OutcomeSelected    Outcome = "selected"
	OutcomeMissing     Outcome = "missing"
	OutcomeUnavailable Outcome = "unavailable"
	OutcomeTimeout     Outcome = "timeout"
	OutcomeError       Outcome = "error"
)
