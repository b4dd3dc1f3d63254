package tree

import (
	"iter"

	"github.com/go-logr/logr"

	"github.com/flier/spatialtree/pkg/arena"
)

// Policy supplies the behavior that differs between a plain quad/oct-tree
// and the planet adapter: how a newly grown child is constructed, whether
// two branches may coalesce a grow event together, and how a neighbor
// query that runs off the edge of one root resumes on another. A nil
// field takes the quad/oct-tree default named in its doc comment; Tree
// itself never special-cases "is this a planet tree" — it only ever calls
// through Policy.
type Policy[T any, PT NodePtr[T]] struct {
	// NewChild builds the value for a newly created child of parent with
	// the given size and center. The default zero-value-plus-SetBounds
	// behavior is used when NewChild is nil.
	NewChild func(parent PT, size float64, center []float64) T

	// SameRegion reports whether two nodes belong to the same region for
	// the purposes of grow-event coalescing (see growEvent in refine.go).
	// Defaults to always-true when nil, which is correct for quad/oct-trees
	// where every root shares one region.
	SameRegion func(a, b PT) bool

	// Boundary is called when a neighbor query's ascent reaches a root
	// without resolving its working direction to zero. It maps the
	// direction the boundary was crossed in, from the node's own frame, to
	// an index into Tree.roots and a Transform to apply to every recorded
	// descent (and to the direction itself) before resuming the descent
	// from that root. Defaults to always returning ok=false when nil,
	// which is correct for quad/oct-trees: crossing their single root's
	// boundary yields no neighbors.
	Boundary func(node PT, dir []int) (targetRoot int, transform Transform, ok bool)
}

func (p *Policy[T, PT]) sameRegion(a, b PT) bool {
	if p == nil || p.SameRegion == nil {
		return true
	}

	return p.SameRegion(a, b)
}

func (p *Policy[T, PT]) boundary(node PT, dir []int) (int, Transform, bool) {
	if p == nil || p.Boundary == nil {
		return 0, Transform{}, false
	}

	return p.Boundary(node, dir)
}

func (p *Policy[T, PT]) newChild(parent PT, size float64, center []float64) T {
	if p == nil || p.NewChild == nil {
		var t T

		PT(&t).SetBounds(size, center)

		return t
	}

	return p.NewChild(parent, size, center)
}

// Tree is the dimension-generic refinement and neighbor-search engine. T
// is the stored node value type (tree.Node, or a type embedding it); PT is
// its pointer type, which must implement Spatial.
type Tree[T any, PT NodePtr[T]] struct {
	Log logr.Logger

	dim     int
	minSize float64
	arena   *arena.Arena[T]
	roots   []arena.Key
	policy  *Policy[T, PT]
}

// New constructs a tree with a single root of the given size and center.
// Returns a *ConstructionError if minSize <= 0, rootSize < minSize, or a
// center component is non-finite.
func New[T any, PT NodePtr[T]](dim int, minSize, rootSize float64, center []float64, policy *Policy[T, PT]) (*Tree[T, PT], error) {
	if err := validateBounds(minSize, rootSize, center); err != nil {
		return nil, err
	}

	a := arena.New[T]()

	var root T
	PT(&root).SetBounds(rootSize, center)
	rootKey := a.Insert(root)

	return &Tree[T, PT]{
		Log:     defaultLogger(),
		dim:     dim,
		minSize: minSize,
		arena:   a,
		roots:   []arena.Key{rootKey},
		policy:  policy,
	}, nil
}

// NewWithRoots constructs a tree from pre-built root values — used by the
// planet adapter, which needs six roots each carrying a distinct face tag
// and world position that only the caller (pkg/planet) knows how to
// compute. Returns a *ConstructionError under the same preconditions as
// New: minSize <= 0, any root's size < minSize, or any root's center has a
// non-finite component.
func NewWithRoots[T any, PT NodePtr[T]](dim int, minSize float64, roots []T, policy *Policy[T, PT]) (*Tree[T, PT], error) {
	for i := range roots {
		size, center := PT(&roots[i]).Bounds()
		if err := validateBounds(minSize, size, center); err != nil {
			return nil, err
		}
	}

	a := arena.New[T]()
	keys := make([]arena.Key, len(roots))

	for i, root := range roots {
		keys[i] = a.Insert(root)
	}

	return &Tree[T, PT]{
		Log:     defaultLogger(),
		dim:     dim,
		minSize: minSize,
		arena:   a,
		roots:   keys,
		policy:  policy,
	}, nil
}

// Dimension returns the number of spatial axes this tree was constructed
// with.
func (t *Tree[T, PT]) Dimension() int { return t.dim }

// MinSize returns the refinement floor: no node smaller than this is ever
// created.
func (t *Tree[T, PT]) MinSize() float64 { return t.minSize }

// Roots returns a copy of the tree's root keys (one for quad/oct, six for
// planet).
func (t *Tree[T, PT]) Roots() []arena.Key {
	return append([]arena.Key(nil), t.roots...)
}

// Get returns the node stored at key, and whether key is still live.
func (t *Tree[T, PT]) Get(key arena.Key) (PT, bool) {
	v, ok := t.arena.Get(key)
	if !ok {
		return nil, false
	}

	return PT(v), true
}

// getUnchecked resolves key without a generation check; callers must hold
// a key known to be live within the current operation.
func (t *Tree[T, PT]) getUnchecked(key arena.Key) PT {
	return PT(t.arena.GetUnchecked(key))
}

// Leaves iterates every leaf in the tree. Iteration order is unspecified.
func (t *Tree[T, PT]) Leaves() iter.Seq2[arena.Key, PT] {
	return func(yield func(arena.Key, PT) bool) {
		for k, v := range t.arena.Iter() {
			p := PT(v)
			if p.HasChildren() {
				continue
			}

			if !yield(k, p) {
				return
			}
		}
	}
}

// Depth returns the number of ancestors between key and its root (0 for a
// root itself). Returns -1 if key does not resolve.
func (t *Tree[T, PT]) Depth(key arena.Key) int {
	depth := 0

	for {
		node, ok := t.Get(key)
		if !ok {
			return -1
		}

		parent, ok := node.Parent()
		if !ok {
			return depth
		}

		key = parent
		depth++
	}
}
