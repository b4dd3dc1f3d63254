// Package tree implements a dimension-generic adaptive subdivision tree:
// nodes live in an arena, refine via a caller-supplied predicate, and
// expose face-directional neighbor search and neighbor-size bookkeeping.
//
// A single engine ([Tree]) serves quad-trees, oct-trees, and (via
// [Policy]) the six-faced planet-tree, since Go generics cannot
// parameterize array length by the dimension: [Node] stores its center,
// children, and neighbor sizes as slices sized from a Dim field rather
// than [D]float64/[2^D]arena.Key arrays.
package tree

import (
	"github.com/flier/spatialtree/pkg/arena"
	"github.com/flier/spatialtree/pkg/opt"
)

// NeighborUnknown is the sentinel stored in NeighborSizes for a face with
// no known touching neighbor (a tree boundary that has never been
// crossed by a query).
const NeighborUnknown = -1.0

// Node is the dimension-generic node record. Quad-trees and oct-trees use
// it directly; the planet adapter embeds it to add a face tag and world
// position.
type Node struct {
	dim    int
	size   float64
	center []float64

	parent   opt.Option[arena.Key]
	children opt.Option[[]arena.Key]

	neighborSizes []float64
}

// NewNode returns a leaf Node of the given dimension, size and center,
// with no parent, no children, and every neighbor size set to
// [NeighborUnknown].
func NewNode(dim int, size float64, center []float64) Node {
	neighborSizes := make([]float64, 2*dim)
	for i := range neighborSizes {
		neighborSizes[i] = NeighborUnknown
	}

	return Node{
		dim:           dim,
		size:          size,
		center:        append([]float64(nil), center...),
		neighborSizes: neighborSizes,
	}
}

// Dimension returns the number of spatial axes this node was constructed
// with (2 for quad-tree and planet nodes, 3 for oct-tree nodes).
func (n *Node) Dimension() int { return n.dim }

// Bounds returns the node's edge length and center position. The
// returned center must not be mutated by the caller.
func (n *Node) Bounds() (float64, []float64) { return n.size, n.center }

// SetBounds overwrites the node's size and center. On a node with no
// neighbor-size slots yet (a zero Node), it also sets the dimension to
// len(center) and fills its 2*len(center) neighbor sizes with
// [NeighborUnknown].
func (n *Node) SetBounds(size float64, center []float64) {
	n.size = size
	n.center = append([]float64(nil), center...)

	if n.neighborSizes == nil {
		n.dim = len(center)
		n.neighborSizes = make([]float64, 2*n.dim)
		for i := range n.neighborSizes {
			n.neighborSizes[i] = NeighborUnknown
		}
	}
}

// Parent returns the key of this node's parent, or ok=false if it is a
// root.
func (n *Node) Parent() (arena.Key, bool) {
	if n.parent.IsNone() {
		return arena.Key{}, false
	}

	return n.parent.Unwrap(), true
}

// SetParent records key as this node's parent.
func (n *Node) SetParent(key arena.Key) { n.parent = opt.Some(key) }

// Children returns this node's child keys and whether it is a branch.
func (n *Node) Children() ([]arena.Key, bool) {
	if n.children.IsNone() {
		return nil, false
	}

	return n.children.Unwrap(), true
}

// SetChildren records children as this node's children, making it a
// branch.
func (n *Node) SetChildren(children []arena.Key) {
	n.children = opt.Some(append([]arena.Key(nil), children...))
}

// TakeChildren removes and returns this node's children, leaving it a
// leaf. Returns nil if the node was already a leaf.
func (n *Node) TakeChildren() []arena.Key {
	return n.children.Take().UnwrapOrDefault()
}

// HasChildren reports whether this node is currently a branch.
func (n *Node) HasChildren() bool { return n.children.IsSome() }

// NeighborSizes returns the mutable per-face neighbor-size slice, length
// 2*Dimension().
func (n *Node) NeighborSizes() []float64 { return n.neighborSizes }

// ContainsPoint reports whether point lies strictly within this node's
// bounds on every axis.
func (n *Node) ContainsPoint(point []float64) bool {
	half := n.size / 2

	for i, c := range n.center {
		if !(c-half < point[i] && point[i] < c+half) {
			return false
		}
	}

	return true
}

// Spatial is the method set [Tree] requires of a node type. [Node]
// implements it directly; planet.Node gets it for free by embedding
// Node, since Go promotes pointer methods of an embedded field.
type Spatial interface {
	Dimension() int
	Bounds() (float64, []float64)
	SetBounds(size float64, center []float64)
	Parent() (arena.Key, bool)
	SetParent(arena.Key)
	Children() ([]arena.Key, bool)
	SetChildren([]arena.Key)
	TakeChildren() []arena.Key
	HasChildren() bool
	NeighborSizes() []float64
	ContainsPoint(point []float64) bool
}

// NodePtr constrains a type parameter to "a pointer to T whose pointer
// method set implements Spatial". Tree and Policy both take T (the
// stored value type) and PT (its pointer type) so they can insert T
// values into an arena.Arena[T] while calling Spatial's pointer-receiver
// methods through PT.
type NodePtr[T any] interface {
	*T
	Spatial
}
