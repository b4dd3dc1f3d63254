// Package octree is a 3D adaptive subdivision tree: a single cubic region
// that refines into eight children wherever a caller-supplied predicate
// demands finer resolution, down to a configured floor size.
package octree

import (
	"github.com/flier/spatialtree/pkg/tree"
)

const Dimension = 3

// Tree is a tree.Tree of tree.Node values specialized to three dimensions, a
// single root, and the default Policy (no face crossings, one shared
// region).
type Tree = tree.Tree[tree.Node, *tree.Node]

// New constructs an octree with a single cubic root of the given size
// centered at center (a 3-element slice). Returns a *tree.ConstructionError
// if minSize <= 0, rootSize < minSize, or a center component is non-finite.
func New(minSize, rootSize float64, center []float64) (*Tree, error) {
	return tree.New[tree.Node, *tree.Node](Dimension, minSize, rootSize, center, nil)
}

// Predicate adapts a function over a node's center and size into the
// predicate shape Insert expects.
func Predicate(f func(size float64, center []float64) bool) func(*tree.Node) bool {
	return func(n *tree.Node) bool {
		size, center := n.Bounds()

		return f(size, center)
	}
}

// The six face directions of an octree node, for use with
// Tree.GetNeighbors.
var (
	XNeg = []int{-1, 0, 0}
	XPos = []int{1, 0, 0}
	YNeg = []int{0, -1, 0}
	YPos = []int{0, 1, 0}
	ZNeg = []int{0, 0, -1}
	ZPos = []int{0, 0, 1}
)
