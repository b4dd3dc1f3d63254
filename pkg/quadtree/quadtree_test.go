package quadtree_test

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/spatialtree/pkg/arena"
	"github.com/flier/spatialtree/pkg/quadtree"
	"github.com/flier/spatialtree/pkg/tree"
)

func distance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}

func TestQuadtree(t *testing.T) {
	Convey("Given a quadtree rooted at (0,0) with size 10", t, func() {
		target := []float64{2, 2}

		qt, err := quadtree.New(1.0, 10.0, []float64{0, 0})
		So(err, ShouldBeNil)

		predicate := quadtree.Predicate(func(size float64, center []float64) bool {
			return distance(center, target) < 3*size
		})

		Convey("When refining toward (2,2) until convergence", func() {
			var events []tree.Event
			for {
				e := qt.InsertAndUpdateNeighbors(predicate)
				if len(e) == 0 {
					break
				}

				events = append(events, e...)
			}

			Convey("Then the root grows first", func() {
				grown, ok := events[0].(tree.Grown)
				So(ok, ShouldBeTrue)
				So(grown.Children, ShouldHaveLength, 4)
			})

			Convey("Then the nearest leaf converges to size 1.25, three levels down", func() {
				var nearest *tree.Node
				var nearestKey arena.Key

				best := math.Inf(1)
				for k, node := range qt.Leaves() {
					_, center := node.Bounds()
					d := distance(center, target)
					if d < best {
						best = d
						nearest = node
						nearestKey = k
					}
				}

				So(nearest, ShouldNotBeNil)

				size, _ := nearest.Bounds()
				So(size, ShouldAlmostEqual, 1.25, 1e-9)

				sizes := nearest.NeighborSizes()
				for _, s := range sizes {
					So(s, ShouldAlmostEqual, 1.25, 1e-9)
				}

				So(qt.Depth(nearestKey), ShouldEqual, 3)
			})
		})
	})
}
