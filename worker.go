package generator

import (
	"runtime"
	"sync"
)

// workerBackend runs the producer on a dedicated worker goroutine spawned at
// creation, which parks immediately and waits for the first resume. Two real
// flows exist here, so the strict alternation the switch backend gets for
// free is enforced instead with one mutex and two condition variables:
// resumeProducer wakes the worker to run the producer, resumeCaller wakes the
// caller with a fresh value or completion. All state is read and written
// under mu, and every wait re-checks its condition so spurious wakeups and a
// forced finish from destroy are both handled.
type workerBackend[V any] struct {
	mu             sync.Mutex
	resumeProducer sync.Cond
	resumeCaller   sync.Cond

	st         State
	value      V
	valueReady bool
	stop       bool
	exited     bool
	fault      error

	wg sync.WaitGroup
}

func newWorkerBackend[V any](g *Generator[V]) *workerBackend[V] {
	b := &workerBackend[V]{}
	b.resumeProducer.L = &b.mu
	b.resumeCaller.L = &b.mu
	b.wg.Add(1)
	go b.run(g)
	return b
}

// run is the worker's entry point. The finish defer executes even when a
// forced yield retires the worker through runtime.Goexit, so a parked caller
// is always woken and destroy's join always completes.
func (b *workerBackend[V]) run(g *Generator[V]) {
	defer b.wg.Done()
	defer b.finish()
	defer func() {
		if p := recover(); p != nil {
			b.mu.Lock()
			b.fault = newPanicError(p)
			b.mu.Unlock()
		}
	}()

	b.mu.Lock()
	for b.st == NotStarted {
		b.resumeProducer.Wait()
	}
	forced := b.st == Finished
	b.mu.Unlock()
	if forced {
		return
	}

	g.fn(g)
}

func (b *workerBackend[V]) finish() {
	b.mu.Lock()
	b.st = Finished
	b.valueReady = true
	b.exited = true
	b.resumeCaller.Signal()
	b.mu.Unlock()
}

func (b *workerBackend[V]) next() (V, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.fault != nil {
		panic(b.fault)
	}
	if b.st == Finished {
		return b.value, true
	}

	b.st = Running
	b.valueReady = false
	b.resumeProducer.Signal()
	for !b.valueReady && b.st != Finished {
		b.resumeCaller.Wait()
	}

	if b.fault != nil {
		panic(b.fault)
	}
	return b.value, b.st == Finished
}

func (b *workerBackend[V]) yield(v V) bool {
	b.mu.Lock()

	switch {
	case b.stop && !b.exited:
		// Forced by destroy while the producer was still computing.
		// The worker is still alive, so this is its own flow arriving
		// at a yield point: retire it here instead of letting it make
		// further progress.
		b.mu.Unlock()
		runtime.Goexit()
	case b.st != Running:
		// Called outside the producer's own running flow, including on
		// an already-destroyed instance: report and leave all state
		// untouched.
		b.mu.Unlock()
		return false
	}

	b.value = v
	b.valueReady = true
	b.st = Yielded
	b.resumeCaller.Signal()
	for b.st == Yielded {
		b.resumeProducer.Wait()
	}

	forced := b.stop
	b.mu.Unlock()
	if forced {
		runtime.Goexit()
	}
	return true
}

func (b *workerBackend[V]) destroy() {
	b.mu.Lock()
	b.stop = true
	b.st = Finished
	b.valueReady = true
	b.resumeProducer.Signal()
	b.resumeCaller.Signal()
	b.mu.Unlock()

	// Join the worker so its stack and resources are reclaimed before
	// destroy returns.
	b.wg.Wait()
}

func (b *workerBackend[V]) state() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.st
}
