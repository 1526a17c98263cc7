// Package bintree provides the binary tree structure the example programs
// and tests traverse. The tree is plain client data: generators only read
// positions into it, and a single tree is safe for any number of concurrent
// read-only traversals.
package bintree

import (
	"golang.org/x/exp/constraints"

	generator "github.com/asukaminato0721/c-yield"
)

// Node is one node of a binary tree. Left and Right may be wired manually to
// shape trees that deliberately violate the search ordering.
type Node[T constraints.Ordered] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// Insert adds v into the subtree rooted at root using binary search ordering
// and returns the (possibly new) root. Duplicates go right.
func Insert[T constraints.Ordered](root *Node[T], v T) *Node[T] {
	if root == nil {
		return &Node[T]{Value: v}
	}
	if v < root.Value {
		root.Left = Insert(root.Left, v)
	} else {
		root.Right = Insert(root.Right, v)
	}
	return root
}

// New builds a search tree by inserting values in order.
func New[T constraints.Ordered](values ...T) *Node[T] {
	var root *Node[T]
	for _, v := range values {
		root = Insert(root, v)
	}
	return root
}

// InOrder recursively walks the subtree rooted at node left-to-right,
// yielding every value through g. The recursion depth is carried across each
// suspension, so the walk resumes mid-recursion wherever it left off. It
// stops early if g reports that no more values are wanted.
func InOrder[T constraints.Ordered](g *generator.Generator[T], node *Node[T]) bool {
	if node == nil {
		return true
	}
	if !InOrder(g, node.Left) {
		return false
	}
	if !g.Yield(node.Value) {
		return false
	}
	return InOrder(g, node.Right)
}

// Producer returns a producer function that yields the tree bound to the
// generator's client data in order. Each generator created from it holds its
// own private position; many may walk the same tree at once.
func Producer[T constraints.Ordered]() generator.Func[T] {
	return func(g *generator.Generator[T]) {
		InOrder(g, g.Data().(*Node[T]))
	}
}
