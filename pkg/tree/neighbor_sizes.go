package tree

import (
	"github.com/flier/spatialtree/pkg/arena"
	"github.com/flier/spatialtree/pkg/tuple"
)

// InsertAndUpdateNeighbors runs Insert, then refreshes NeighborSizes on
// every leaf that Insert's events may have affected. Returns the
// concatenation of the refinement events and the NeighborSizesChanged
// events produced by the bookkeeping pass.
func (t *Tree[T, PT]) InsertAndUpdateNeighbors(predicate func(PT) bool) []Event {
	events := t.Insert(predicate)

	visited := make(map[arena.Key]bool)

	for _, event := range events {
		switch e := event.(type) {
		case Grown:
			for _, child := range e.Children {
				t.updateNeighborSizes(child, visited)
			}
		case Shrunk:
			t.updateNeighborSizes(e.Retained, visited)
		}
	}

	for key := range visited {
		events = append(events, NeighborSizesChanged{Key: key})
	}

	return events
}

// updateNeighborSizes recomputes leafKey's own NeighborSizes slice from
// its current neighbors across every face, and propagates leafKey's size
// onto each of those neighbors' opposite-face slot via updateNeighborSize.
// Changes are recorded into visited (deduplicated) so InsertAndUpdateNeighbors
// emits at most one NeighborSizesChanged per node per pass.
func (t *Tree[T, PT]) updateNeighborSizes(leafKey arena.Key, visited map[arena.Key]bool) {
	leaf := t.getUnchecked(leafKey)
	leafSize, _ := leaf.Bounds()

	staged := make([]tuple.Tuple2[int, float64], 0, 2*t.dim)

	for _, dir := range AllFaceDirections(t.dim) {
		neighbors, effectiveDir := t.neighborsOf(leafKey, dir)

		for _, neighborKey := range neighbors {
			if t.updateNeighborSize(neighborKey, leafSize, negate(effectiveDir)) {
				if !visited[neighborKey] {
					visited[neighborKey] = true
				}
			}

			neighbor := t.getUnchecked(neighborKey)
			neighborSize, _ := neighbor.Bounds()

			size := neighborSize
			if neighborSize < leafSize {
				size = leafSize
			}

			staged = append(staged, tuple.New2(FaceIndex(dir), size))
		}
	}

	sizes := leaf.NeighborSizes()
	for i := range sizes {
		sizes[i] = NeighborUnknown
	}

	for _, pair := range staged {
		face, size := pair.Unpack()
		if size > sizes[face] {
			sizes[face] = size
		}
	}
}

// updateNeighborSize updates neighborKey's own NeighborSizes slot for dir
// (the border's direction as seen from the neighbor) so it records
// subjectSize, applying the original source's "smaller side records the
// larger size" rule. Reports whether the stored value changed.
func (t *Tree[T, PT]) updateNeighborSize(neighborKey arena.Key, subjectSize float64, dir []int) bool {
	neighbor := t.getUnchecked(neighborKey)
	neighborSize, _ := neighbor.Bounds()

	index := FaceIndex(dir)
	sizes := neighbor.NeighborSizes()
	current := sizes[index]

	if current == subjectSize {
		return false
	}

	if neighborSize < subjectSize {
		sizes[index] = subjectSize

		return true
	}

	if current != neighborSize {
		sizes[index] = neighborSize

		return true
	}

	return false
}
