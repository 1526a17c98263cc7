package generator_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	generator "github.com/asukaminato0721/c-yield"
)

func TestDestroyBeforeStart(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			ran := false
			g, err := generator.New(func(g *generator.Generator[int64]) {
				ran = true
			}, nil, b.opts...)
			require.NoError(t, err)

			g.Destroy()
			require.Equal(t, generator.Finished, g.State())
			require.False(t, ran, "a never-resumed producer must not run")
		})
	}
}

func TestDestroyMidStream(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			unwound := false
			g, err := generator.New(func(g *generator.Generator[int64]) {
				defer func() { unwound = true }()
				for v := int64(0); ; v++ {
					if !g.Yield(v) {
						return
					}
				}
			}, nil, b.opts...)
			require.NoError(t, err)

			for i := 0; i < 3; i++ {
				v, finished := g.Next()
				require.False(t, finished)
				require.Equal(t, int64(i), v)
			}

			// The producer is parked at its yield point with unbounded work
			// left. Destroy must unblock it once, run its defers, and not
			// return until its flow has fully exited.
			g.Destroy()
			require.True(t, unwound, "producer defers must run during forced teardown")
			require.Equal(t, generator.Finished, g.State())
		})
	}
}

func TestDestroyIdempotent(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			g, err := generator.New(fib(10), nil, b.opts...)
			require.NoError(t, err)

			g.Next()
			g.Destroy()
			g.Destroy()
			require.Equal(t, generator.Finished, g.State())
		})
	}
}

func TestDestroyAfterFinish(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			g, err := generator.New(fib(2), nil, b.opts...)
			require.NoError(t, err)

			collect(g)
			g.Destroy()
			require.Equal(t, generator.Finished, g.State())
		})
	}
}

func TestDeepRecursionTeardown(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			// Suspend 64 recursive frames deep, then force teardown; the
			// whole stack must unwind, innermost defers first.
			var unwound []int
			var descend func(g *generator.Generator[int64], depth int)
			descend = func(g *generator.Generator[int64], depth int) {
				defer func() { unwound = append(unwound, depth) }()
				if depth == 64 {
					g.Yield(int64(depth))
					return
				}
				descend(g, depth+1)
			}

			g, err := generator.New(func(g *generator.Generator[int64]) {
				descend(g, 0)
			}, nil, b.opts...)
			require.NoError(t, err)

			v, finished := g.Next()
			require.False(t, finished)
			require.Equal(t, int64(64), v)

			g.Destroy()
			require.Len(t, unwound, 65)
			require.Equal(t, 64, unwound[0], "innermost defer must run first")
			require.Equal(t, 0, unwound[64])
		})
	}
}
