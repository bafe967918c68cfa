package client

// State is the connection lifecycle state of a [Client]. State is
// informational: it is reported for logging and introspection, and does
// not gate operations beyond the one-time stream claim.
type State int32

const (
	// StateDisconnected is the initial state before Connect.
	StateDisconnected State = iota

	// StateConnecting covers dialing and transport setup.
	StateConnecting

	// StateRegistering covers nickname and user registration, including
	// negotiation over the candidate nickname list.
	StateRegistering

	// StateConnected means registration completed and the client is
	// exchanging messages.
	StateConnected

	// StateQuit is terminal: the connection ended, cleanly or not.
	StateQuit
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateRegistering:
		return "registering"
	case StateConnected:
		return "connected"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
