package registration

// State is the dialogue state a session is in, derived from its flags.
type State string

const (
	StateCollecting           State = "collecting"
	StateEditing              State = "editing"
	StateAwaitingFinalization State = "awaiting_finalization"
	StateCompleted            State = "completed"
)

// Session is the per-conversation registration state. Access must be
// serialized through the Registry; the struct itself is not safe for
// concurrent use.
type Session struct {
	ID string
	// FieldCursor indexes the next schema field to collect. It only moves
	// forward; edits replace values without touching it.
	FieldCursor int
	// Collected maps canonical field names to canonical values.
	Collected map[string]string
	// EditingField, when non-empty, names the already-collected field the
	// next turn's text replaces. It takes precedence over finalization.
	EditingField         string
	AwaitingFinalization bool
	// Completed is terminal: once set, Collected must not change again.
	Completed bool
}

func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Collected: make(map[string]string),
	}
}

// State derives the machine state. Editing wins over finalization when
// both flags are set from the same turn's perspective.
func (s *Session) State() State {
	switch {
	case s.Completed:
		return StateCompleted
	case s.EditingField != "":
		return StateEditing
	case s.AwaitingFinalization:
		return StateAwaitingFinalization
	default:
		return StateCollecting
	}
}

// Snapshot returns a copy of the collected values.
func (s *Session) Snapshot() map[string]string {
	out := make(map[string]string, len(s.Collected))
	for k, v := range s.Collected {
		out[k] = v
	}
	return out
}
