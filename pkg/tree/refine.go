package tree

import (
	"github.com/flier/spatialtree/internal/debug"
	"github.com/flier/spatialtree/pkg/arena"
)

// Insert runs one refinement pass: predicate is evaluated against every
// visited node starting from the roots, growing nodes it holds true for
// and shrinking subtrees it holds false for. Returns the ordered list of
// Grown and Shrunk events produced.
func (t *Tree[T, PT]) Insert(predicate func(PT) bool) []Event {
	var events []Event

	pending := append([]arena.Key(nil), t.roots...)

	for len(pending) > 0 {
		n := len(pending) - 1
		key := pending[n]
		pending = pending[:n]

		node := t.getUnchecked(key)

		if predicate(node) {
			if children, ok := node.Children(); ok {
				pending = append(pending, children...)

				continue
			}

			size, _ := node.Bounds()
			if size/2 >= t.minSize {
				_, center := node.Bounds()
				newChildren := t.createChildren(key, node)
				t.growEvent(&events, center, key, newChildren)
				pending = append(pending, newChildren...)
			}
		} else if node.HasChildren() {
			t.shrinkEvent(&events, key)
		}
	}

	return events
}

// createChildren subdivides parent into 2^dim children, links them, and
// returns their keys.
func (t *Tree[T, PT]) createChildren(parentKey arena.Key, parent PT) []arena.Key {
	parentSize, parentCenter := parent.Bounds()

	newSize := parentSize / 2
	quartSize := parentSize / 4

	numChildren := 1 << uint(t.dim)
	children := make([]arena.Key, numChildren)

	for i := 0; i < numChildren; i++ {
		dir := ChildDirection(t.dim, i)

		center := make([]float64, t.dim)
		for axis := range center {
			center[axis] = parentCenter[axis] + float64(dir[axis])*quartSize
		}

		child := t.policy.newChild(parent, newSize, center)
		childPT := PT(&child)
		childPT.SetParent(parentKey)

		children[i] = t.arena.Insert(child)
	}

	parent.SetChildren(children)

	debug.Assert(len(children) == numChildren, "branch must have exactly %d children, got %d", numChildren, len(children))

	for i, key := range children {
		child := t.getUnchecked(key)
		size, center := child.Bounds()
		dir := ChildDirection(t.dim, i)

		debug.Assert(size == newSize, "child %d size %v must equal parent.size/2 = %v", i, size, newSize)

		for axis, c := range center {
			expected := parentCenter[axis] + float64(dir[axis])*quartSize
			debug.Assert(c == expected, "child %d center axis %d = %v must equal %v", i, axis, c, expected)
		}

		childParent, hasParent := child.Parent()
		debug.Assert(hasParent && childParent == parentKey, "child %d must link back to parent %v", i, parentKey)
	}

	return children
}

// growEvent appends a Grown event for parent/newChildren, or — if the
// most recently emitted Grown's parent contains center and (per Policy)
// is in the same region — coalesces into that event instead, keeping
// only its still-leaf children.
func (t *Tree[T, PT]) growEvent(events *[]Event, center []float64, parentKey arena.Key, newChildren []arena.Key) {
	parent := t.getUnchecked(parentKey)

	for i := len(*events) - 1; i >= 0; i-- {
		grown, ok := (*events)[i].(Grown)
		if !ok {
			continue
		}

		prevParent := t.getUnchecked(grown.Parent)
		if !t.policy.sameRegion(prevParent, parent) || !prevParent.ContainsPoint(center) {
			continue
		}

		leaves := grown.Children[:0]
		for _, key := range grown.Children {
			if !t.getUnchecked(key).HasChildren() {
				leaves = append(leaves, key)
			}
		}

		grown.Children = append(leaves, newChildren...)
		(*events)[i] = grown

		t.Log.V(1).Info("coalesced grow", "parent", grown.Parent, "children", len(grown.Children))

		return
	}

	*events = append(*events, Grown{
		Parent:   parentKey,
		Children: append([]arena.Key(nil), newChildren...),
	})

	t.Log.V(1).Info("grow", "parent", parentKey, "children", len(newChildren))
}

func (t *Tree[T, PT]) shrinkEvent(events *[]Event, key arena.Key) {
	removed := t.removeSubtree(key)
	if len(removed) > 0 {
		*events = append(*events, Shrunk{Retained: key, Removed: removed})

		t.Log.V(1).Info("shrink", "retained", key, "removed", len(removed))
	}
}

// removeSubtree deletes every descendant of key from the arena, post-order,
// and returns every removed key — branch or leaf, at any depth. key itself
// is left in the arena, demoted back to a leaf by TakeChildren.
func (t *Tree[T, PT]) removeSubtree(key arena.Key) []arena.Key {
	node := t.getUnchecked(key)
	pending := node.TakeChildren()

	var visited []arena.Key

	for len(pending) > 0 {
		n := len(pending) - 1
		childKey := pending[n]
		pending = pending[:n]

		child, ok := t.arena.Get(childKey)
		if !ok {
			continue
		}

		if grandchildren, ok := PT(child).Children(); ok {
			pending = append(pending, grandchildren...)
		}

		visited = append(visited, childKey)
	}

	// visited lists every node before its descendants; removing it in
	// reverse deletes each node's children before the node itself.
	removed := make([]arena.Key, 0, len(visited))
	for i := len(visited) - 1; i >= 0; i-- {
		if _, ok := t.arena.Remove(visited[i]); ok {
			removed = append(removed, visited[i])
		}
	}

	return removed
}
