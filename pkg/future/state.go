package future

// State identifies where a handle is in its lifecycle.
type State uint8

const (
	// StateNotStarted means the computation has not been launched yet.
	StateNotStarted State = iota
	// StateRunning means the worker goroutine is executing the computation.
	StateRunning
	// StateReady means a value arrived and has not been consumed yet.
	StateReady
	// StateDrained means the value was consumed by an earlier Poll or Await.
	StateDrained
	// StateAborted means the computation panicked; the handle holds no value.
	StateAborted
	// StateClosed means the handle was abandoned via Close.
	StateClosed
)

// String returns a short lowercase label suitable for log attributes.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StateReady:
		return "ready"
	case StateDrained:
		return "drained"
	case StateAborted:
		return "aborted"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
