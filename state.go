package generator

// State identifies where a generator instance is in its lifecycle. States
// only move forward: NotStarted → Running → Yielded → Running → … → Finished,
// and Finished is terminal.
type State int32

const (
	// NotStarted means the producer has been bound but never resumed.
	NotStarted State = iota
	// Running means the producer currently holds the logical flow of control.
	Running
	// Yielded means the producer is suspended at a yield point; its last
	// value is stable and re-readable until the next resume.
	Yielded
	// Finished means the producer returned or was retired by Destroy.
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Yielded:
		return "yielded"
	case Finished:
		return "finished"
	default:
		return "invalid"
	}
}
