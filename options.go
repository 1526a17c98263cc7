package generator

import "errors"

// DefaultStackSize is the stack hint applied when WithStackSize is not used
// or is given zero.
const DefaultStackSize = 16 * 1024

var (
	// ErrNilFunc is returned by New when no producer function is given.
	ErrNilFunc = errors.New("generator: nil producer function")

	// ErrStackSize is returned by New when a negative stack size is
	// configured for the context-switch backend.
	ErrStackSize = errors.New("generator: invalid stack size")
)

type config struct {
	worker    bool
	stackSize int
}

// Option configures a generator at creation time.
type Option func(*config)

// WithThreadWorker runs the producer on a dedicated worker instead of the
// default context-switch backend. The observable contract is identical; the
// handoff is enforced with a mutex and two condition variables rather than a
// direct context switch.
func WithThreadWorker() Option {
	return func(c *config) { c.worker = true }
}

// WithStackSize sets the stack hint for the context-switch backend. Zero
// selects DefaultStackSize; a negative size fails New. The runtime grows
// producer stacks on demand, so the hint does not bound the stack. The worker
// backend ignores it.
func WithStackSize(n int) Option {
	return func(c *config) { c.stackSize = n }
}
