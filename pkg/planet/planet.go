// Package planet adapts the generic subdivision engine in pkg/tree into a
// six-faced cube planet: each face is its own quad-tree root, and a
// neighbor query that runs off a face's edge transfers onto the
// adjoining face with the correct rotation or mirroring applied.
package planet

import "github.com/flier/spatialtree/pkg/tree"

// Tree is a planet.Node tree.Tree wired with the six-root, face-crossing
// Policy New builds.
type Tree = tree.Tree[Node, *Node]

var faceOrder = []Face{XNeg, XPos, YNeg, YPos, ZNeg, ZPos}

// New constructs a planet of the given size centered at pos (a 3-element
// slice), with one quad-tree root per cube face. Faces refine down to
// minSize, same as a plain quad-tree. Returns a *tree.ConstructionError if
// minSize <= 0, size < minSize, or a pos component is non-finite.
func New(minSize, size float64, pos []float64) (*Tree, error) {
	roots := make([]Node, len(faceOrder))

	for i, f := range faceOrder {
		dir := f.Normal()

		world := make([]float64, 3)
		for axis := range world {
			world[axis] = pos[axis] + dir[axis]*size/2
		}

		local := worldToLocal(f, world)

		roots[i] = NewNode(f, size, local, world)
	}

	policy := &tree.Policy[Node, *Node]{
		NewChild:   newChild,
		SameRegion: sameRegion,
		Boundary:   boundary,
	}

	return tree.NewWithRoots[Node, *Node](2, minSize, roots, policy)
}

// sameRegion reports whether a and b belong to the same face, for the
// purposes of grow-event coalescing.
func sameRegion(a, b *Node) bool {
	return a.Face() == b.Face()
}

// Predicate adapts a function over a node's face, center, and size into
// the predicate shape Insert expects.
func Predicate(f func(face Face, size float64, center []float64) bool) func(*Node) bool {
	return func(n *Node) bool {
		size, center := n.Bounds()

		return f(n.Face(), size, center)
	}
}
