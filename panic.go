package generator

import (
	"fmt"
	"runtime/debug"
)

// panicError wraps a value recovered from a panicking producer together with
// the stack trace captured at the panic site, so the rethrow at the resume
// site still points at the producer code that failed.
type panicError struct {
	value any
	stack []byte
}

func (p *panicError) Error() string {
	return fmt.Sprintf("generator: producer panicked: %v", p.value)
}

// ErrorWithStack formats the panic value together with the producer-side
// stack trace captured when it fired.
func (p *panicError) ErrorWithStack() string {
	return fmt.Sprintf("%v\n\n%s", p.value, p.stack)
}

func (p *panicError) Unwrap() error {
	err, ok := p.value.(error)
	if !ok {
		return nil
	}
	return err
}

func newPanicError(v any) error {
	return &panicError{
		value: v,
		stack: debug.Stack(),
	}
}
