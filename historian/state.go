package historian

// State is the connection state of the historian link.
type State int

const (
	// Unconnected means no live socket to the historian.
	Unconnected State = iota
	// ConnectedWaiting means the socket is up but no status snapshot
	// has arrived yet.
	ConnectedWaiting
	// ConnectedReady means at least one status snapshot is known.
	ConnectedReady
)

func (s State) String() string {
	switch s {
	case Unconnected:
		return "unconnected"
	case ConnectedWaiting:
		return "connected-waiting"
	case ConnectedReady:
		return "connected-ready"
	default:
		return "unknown"
	}
}
