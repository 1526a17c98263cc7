package generator

import "iter"

// retired is panicked through a suspended producer when Destroy forces it to
// unwind. The entry wrapper absorbs it; anything else recovered there is a
// producer fault and is rethrown to the caller of next.
type retired struct{}

// switchBackend runs the producer on its own independently switchable stack
// within the caller's thread, using the runtime coroutine behind iter.Pull:
// suspend and resume are a single direct transfer of the execution context,
// with no scheduler involvement and no locks. Only one of the two flows is
// ever runnable, so no field needs a guard: every access happens from
// whichever flow currently holds control, and the handoff itself orders them.
type switchBackend[V any] struct {
	resume func() (V, bool)
	stop   func()

	// yieldTo suspends the producer; non-nil only while the producer's
	// frame is live on its own stack.
	yieldTo func(V) bool

	st    State
	value V
	fault error
}

func newSwitchBackend[V any](g *Generator[V]) *switchBackend[V] {
	b := &switchBackend[V]{}
	b.resume, b.stop = iter.Pull(func(yield func(V) bool) {
		// Entry wrapper: marks the instance finished before control
		// transfers back to the caller, so its next poll observes
		// completion; captures a producer fault for the rethrow at the
		// resume site.
		defer func() {
			b.yieldTo = nil
			b.st = Finished
			if p := recover(); p != nil {
				if _, ok := p.(retired); !ok {
					b.fault = newPanicError(p)
				}
			}
		}()
		b.yieldTo = yield
		g.fn(g)
	})
	return b
}

func (b *switchBackend[V]) next() (V, bool) {
	if b.fault != nil {
		panic(b.fault)
	}
	if b.st == Finished {
		return b.value, true
	}
	b.st = Running
	v, ok := b.resume()
	if b.fault != nil {
		panic(b.fault)
	}
	if !ok {
		return b.value, true
	}
	return v, false
}

func (b *switchBackend[V]) yield(v V) bool {
	if b.st != Running || b.yieldTo == nil {
		return false
	}
	b.value = v
	b.st = Yielded
	if !b.yieldTo(v) {
		// Destroy stopped the instance while the producer was parked
		// here; unwind its whole stack, running its defers, instead of
		// letting it make further progress.
		panic(retired{})
	}
	return true
}

func (b *switchBackend[V]) destroy() {
	// A producer parked at its yield point resumes into the retired
	// unwind; one that never ran is never entered. stop does not return
	// until the producer's stack has fully exited.
	b.stop()
	b.st = Finished
}

func (b *switchBackend[V]) state() State {
	return b.st
}
