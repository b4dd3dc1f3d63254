package tree

import "github.com/flier/spatialtree/pkg/arena"

// GetNeighbors returns every leaf sharing area with node across the face
// named by dir (a single-nonzero-component direction vector). The search
// ascends to a shared ancestor, descends mirror-symmetrically back down,
// and — if it lands on a branch — collects every leaf bordering that face.
func (t *Tree[T, PT]) GetNeighbors(nodeKey arena.Key, dir []int) []arena.Key {
	neighbors, _ := t.neighborsOf(nodeKey, dir)

	return neighbors
}

// neighborsOf is GetNeighbors plus the effective direction the query
// resolved to: the original dir unless a planet face crossing happened, in
// which case it is dir carried through the crossing's Transform. The
// neighbor-size propagation pass (neighbor_sizes.go) needs this to index
// the opposite face in each returned neighbor's own frame.
func (t *Tree[T, PT]) neighborsOf(nodeKey arena.Key, dir []int) (neighbors []arena.Key, effectiveDir []int) {
	ancestor, descents, effectiveDir, ok := t.findSharedParent(nodeKey, dir)
	if !ok {
		return nil, dir
	}

	landed := t.descend(ancestor, descents)
	if !t.getUnchecked(landed).HasChildren() {
		return []arena.Key{landed}, effectiveDir
	}

	return t.borderingNeighbours(landed, effectiveDir), effectiveDir
}

// findSharedParent ascends from nodeKey toward the root, recording at each
// step the mirrored octant of the step just taken (descents) and folding
// dir into a working direction. It stops either when the working
// direction zeroes out (an ancestor whose subtree contains the neighbor
// was found) or when a root is reached with it still nonzero — a tree
// boundary. For a boundary, Policy.Boundary is consulted: if it resolves
// the crossing, every recorded descent (and the direction itself) is
// rewritten by the returned Transform and the search resumes from the
// target root.
//
// effectiveDir is dir unchanged unless a face transfer happened, in which
// case it is dir passed through the same Transform — both
// borderingNeighbours and the neighbor-size propagation pass must use it
// instead of the original query direction once a crossing occurred.
func (t *Tree[T, PT]) findSharedParent(nodeKey arena.Key, dir []int) (ancestor arena.Key, descents [][]int, effectiveDir []int, ok bool) {
	key := nodeKey
	working := append([]int(nil), dir...)
	effectiveDir = dir

	for {
		node := t.getUnchecked(key)

		parentKey, hasParent := node.Parent()
		if !hasParent {
			break
		}

		if isZero(working) {
			return key, descents, effectiveDir, true
		}

		parent := t.getUnchecked(parentKey)

		nodeDescent := t.childDescentOf(parent, key)

		neighborDescent := make([]int, t.dim)
		for i := range neighborDescent {
			neighborDescent[i] = nodeDescent[i] * (1 - 2*absInt(working[i]))
		}

		descents = append(descents, neighborDescent)

		for i := range working {
			working[i] = (nodeDescent[i] + working[i]) / 2
		}

		key = parentKey
	}

	if isZero(working) {
		return key, descents, effectiveDir, true
	}

	targetRoot, transform, crossed := t.policy.boundary(t.getUnchecked(key), working)
	if !crossed {
		return arena.Key{}, nil, nil, false
	}

	for i, d := range descents {
		descents[i] = transform.Apply(d)
	}

	effectiveDir = transform.Apply(dir)

	t.Log.V(1).Info("face transfer", "from", key, "to", t.roots[targetRoot], "transform", transform.Kind)

	return t.roots[targetRoot], descents, effectiveDir, true
}

// childDescentOf returns the octant direction of child within parent, by
// reverse-looking-up child's index in parent's children slice.
func (t *Tree[T, PT]) childDescentOf(parent PT, child arena.Key) []int {
	children, _ := parent.Children()

	for i, key := range children {
		if key == child {
			return ChildDirection(t.dim, i)
		}
	}

	return make([]int, t.dim)
}

// descend pops descents in reverse and follows children from ancestor,
// stopping early at a leaf (an equal-or-larger neighbor).
func (t *Tree[T, PT]) descend(ancestor arena.Key, descents [][]int) arena.Key {
	key := ancestor

	for i := len(descents) - 1; i >= 0; i-- {
		node := t.getUnchecked(key)

		children, ok := node.Children()
		if !ok {
			break
		}

		index := ChildIndexFromDirection(descents[i])
		key = children[index]

		if !t.getUnchecked(key).HasChildren() {
			break
		}
	}

	return key
}

// borderingNeighbours collects every leaf under ancestor lying along the
// face opposite dir (the query direction from the subject node's point of
// view): it descends only into children whose direction matches the
// inverted dir's fixed axis and varies freely on the others.
func (t *Tree[T, PT]) borderingNeighbours(ancestor arena.Key, dir []int) []arena.Key {
	childDirs := ChildDirectionsAlongFace(t.dim, negate(dir))

	var leaves []arena.Key
	pending := []arena.Key{ancestor}

	for len(pending) > 0 {
		n := len(pending) - 1
		key := pending[n]
		pending = pending[:n]

		node := t.getUnchecked(key)

		children, ok := node.Children()
		if !ok {
			leaves = append(leaves, key)

			continue
		}

		for _, cd := range childDirs {
			pending = append(pending, children[ChildIndexFromDirection(cd)])
		}
	}

	return leaves
}
