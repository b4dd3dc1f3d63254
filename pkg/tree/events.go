package tree

import "github.com/flier/spatialtree/pkg/arena"

// Event is the common type of the three refinement/bookkeeping events a
// refinement pass can produce. Consumers type-switch on the concrete type.
type Event interface {
	isEvent()
}

// Grown records that parent became a branch during this pass. Children is
// the current leaf frontier descended from parent within this pass — if
// one of those children is itself grown later in the same pass, the two
// Grown events coalesce into one (see growEvent in refine.go) rather than
// being reported separately.
type Grown struct {
	Parent   arena.Key
	Children []arena.Key
}

func (Grown) isEvent() {}

// Shrunk records that an entire subtree was removed and its root
// (Retained) demoted back to a leaf. Removed lists every node deleted
// from the arena, branch or leaf, at any depth.
type Shrunk struct {
	Retained arena.Key
	Removed  []arena.Key
}

func (Shrunk) isEvent() {}

// NeighborSizesChanged reports that Key's NeighborSizes slice was
// modified by the neighbor-size propagation pass ([Tree.InsertAndUpdateNeighbors]).
// At most one is emitted per node per pass.
type NeighborSizesChanged struct {
	Key arena.Key
}

func (NeighborSizesChanged) isEvent() {}
