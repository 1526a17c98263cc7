package generator

import "iter"

// Func is the entry point of a producer. It receives the generator it runs
// inside so it can yield values, read the client data bound at creation, and
// observe its own lifecycle. It may call arbitrarily deep helpers that yield
// on its behalf; it finishes by returning.
type Func[V any] func(*Generator[V])

// backend implements the suspend/resume handoff for one generator instance.
// Exactly one of the caller flow and the producer flow is logically executing
// at any instant; each implementation upholds that through its own mechanism.
type backend[V any] interface {
	next() (V, bool)
	yield(V) bool
	destroy()
	state() State
}

// Generator is one independent, resumable producer of a sequence of values.
// It is driven one value at a time with Next and released with Destroy.
//
// A Generator is not safe for concurrent Next calls from multiple goroutines;
// distinct instances are fully independent and may be driven concurrently.
type Generator[V any] struct {
	fn   Func[V]
	data any
	b    backend[V]
}

// New creates a generator that runs fn. data is an opaque client value made
// visible to the producer through Data; the generator never dereferences or
// retains it beyond the handle, and its lifetime is the client's
// responsibility.
//
// The producer does not start running until the first call to Next.
func New[V any](fn Func[V], data any, opts ...Option) (*Generator[V], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	cfg := config{stackSize: DefaultStackSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.stackSize < 0 {
		return nil, ErrStackSize
	}
	if cfg.stackSize == 0 {
		cfg.stackSize = DefaultStackSize
	}

	g := &Generator[V]{fn: fn, data: data}
	if cfg.worker {
		g.b = newWorkerBackend(g)
	} else {
		g.b = newSwitchBackend(g)
	}
	return g, nil
}

// Next resumes the producer from wherever it last suspended and blocks until
// it either yields a value (returned with finished == false) or returns
// (finished == true, with the last value the producer yielded). Once the
// generator has finished, Next is idempotent: every further call returns the
// same value and finished == true.
//
// Next blocks for as long as the producer works between yields; there is no
// timeout. If the producer panicked, Next rethrows the captured panic.
func (g *Generator[V]) Next() (value V, finished bool) {
	return g.b.next()
}

// Yield hands v to the caller blocked in Next and suspends the producer until
// it is resumed. It must be called from the producer's own flow while the
// generator is running; called in any other state it leaves all state
// untouched and reports false, and the producer must stop and return.
//
// Yield does not return while the generator is being retired by Destroy: the
// producer's stack is unwound instead, with its defers run.
func (g *Generator[V]) Yield(v V) (ok bool) {
	return g.b.yield(v)
}

// Destroy releases the instance's resources and is always safe to call, in
// any state. A producer that has not finished is unblocked once and retired
// without being allowed further progress; Destroy does not return until the
// producer's flow has fully exited, so no worker or stack outlives it. The
// generator must not be resumed again afterwards.
func (g *Generator[V]) Destroy() {
	g.b.destroy()
}

// State reports the instance's current lifecycle state.
func (g *Generator[V]) State() State {
	return g.b.state()
}

// Data returns the opaque client value bound at creation.
func (g *Generator[V]) Data() any {
	return g.data
}

// Run drives g to completion, calling f for each value it yields, and
// destroys it afterwards. If f panics, the generator is destroyed before the
// panic propagates so the producer is not left suspended.
func Run[V any](g *Generator[V], f func(V)) {
	defer g.Destroy()
	for {
		v, finished := g.Next()
		if finished {
			return
		}
		f(v)
	}
}

// All adapts the generator to a range-over-func sequence. Breaking out of the
// range destroys the generator; ranging to the end leaves it finished but not
// destroyed, so All may only be ranged over once.
func (g *Generator[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, finished := g.Next()
			if finished {
				return
			}
			if !yield(v) {
				g.Destroy()
				return
			}
		}
	}
}
