// Package quadtree is a 2D adaptive subdivision tree: a single square
// region that refines into four children wherever a caller-supplied
// predicate demands finer resolution, down to a configured floor size.
package quadtree

import (
	"github.com/flier/spatialtree/pkg/tree"
)

const Dimension = 2

// Tree is a tree.Tree of tree.Node values specialized to two dimensions, a
// single root, and the default Policy (no face crossings, one shared
// region).
type Tree = tree.Tree[tree.Node, *tree.Node]

// New constructs a quadtree with a single square root of the given size
// centered at center (a 2-element slice). Returns a *tree.ConstructionError
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

// Left, Right, Bottom, Top are the four face directions of a quadtree
// node, for use with Tree.GetNeighbors.
var (
	Left   = []int{-1, 0}
	Right  = []int{1, 0}
	Bottom = []int{0, -1}
	Top    = []int{0, 1}
)
