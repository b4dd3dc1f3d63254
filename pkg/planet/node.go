package planet

import "github.com/flier/spatialtree/pkg/tree"

// Node is a quad-tree node living on one face of a six-sided planet: it
// embeds tree.Node for its local 2D bounds and neighbor bookkeeping, and
// additionally carries the face it belongs to and its position in the
// planet's world space.
type Node struct {
	tree.Node

	face     Face
	worldPos []float64
}

// NewNode builds a root node for face f, at local face coordinates
// local (2-element) and world-space position world (3-element).
func NewNode(f Face, size float64, local, world []float64) Node {
	return Node{
		Node:     tree.NewNode(2, size, local),
		face:     f,
		worldPos: append([]float64(nil), world...),
	}
}

// Face returns the cube face this node belongs to.
func (n *Node) Face() Face { return n.face }

// WorldPosition returns this node's center in the planet's world space.
func (n *Node) WorldPosition() []float64 { return n.worldPos }

// newChild builds parent's child at local face coordinates center,
// re-deriving its world position from parent's face and world position —
// the Policy.NewChild hook passed to tree.NewWithRoots.
func newChild(parent *Node, size float64, center []float64) Node {
	world := localToWorld(parent.face, center, parent.worldPos)

	return NewNode(parent.face, size, center, world)
}
