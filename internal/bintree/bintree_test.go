package bintree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	generator "github.com/asukaminato0721/c-yield"
	"github.com/asukaminato0721/c-yield/internal/bintree"
)

func walk(t *testing.T, tree *bintree.Node[int64]) []int64 {
	t.Helper()
	g, err := generator.New(bintree.Producer[int64](), tree)
	require.NoError(t, err)

	var out []int64
	generator.Run(g, func(v int64) {
		out = append(out, v)
	})
	return out
}

func TestInsertInOrder(t *testing.T) {
	tree := bintree.New[int64](50, 30, 70, 40, 20)
	require.Equal(t, []int64{20, 30, 40, 50, 70}, walk(t, tree))
}

func TestEmptyTree(t *testing.T) {
	require.Empty(t, walk(t, nil))
}

func TestDuplicatesGoRight(t *testing.T) {
	tree := bintree.New[int64](5, 5, 5)
	require.Equal(t, []int64{5, 5, 5}, walk(t, tree))
}

func TestManualShaping(t *testing.T) {
	// Hand-wired tree that breaks search ordering; InOrder must still report
	// positions faithfully.
	tree := &bintree.Node[int64]{
		Value: 50,
		Left:  &bintree.Node[int64]{Value: 30, Right: &bintree.Node[int64]{Value: 60}},
		Right: &bintree.Node[int64]{Value: 70},
	}
	require.Equal(t, []int64{30, 60, 50, 70}, walk(t, tree))
}

func TestInOrderStopsEarly(t *testing.T) {
	tree := bintree.New[int64](4, 2, 6, 1, 3, 5, 7)
	g, err := generator.New(bintree.Producer[int64](), tree)
	require.NoError(t, err)

	var got []int64
	for v := range g.All() {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	require.Equal(t, []int64{1, 2, 3}, got)
	require.Equal(t, generator.Finished, g.State())
}
