package tree_test

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/spatialtree/pkg/tree"
	"github.com/flier/spatialtree/pkg/xerrors"
)

func TestConstruction(t *testing.T) {
	Convey("Given construction arguments", t, func() {
		Convey("When min_size is not positive", func() {
			_, err := tree.New[tree.Node, *tree.Node](2, 0, 10, []float64{0, 0}, nil)

			Convey("Then it reports ErrNonPositiveMinSize", func() {
				ce, ok := xerrors.AsA[*tree.ConstructionError](err)
				So(ok, ShouldBeTrue)
				So(ce.Reason, ShouldEqual, tree.ErrNonPositiveMinSize)
			})
		})

		Convey("When root_size is smaller than min_size", func() {
			_, err := tree.New[tree.Node, *tree.Node](2, 5, 1, []float64{0, 0}, nil)

			Convey("Then it reports ErrRootSmallerThanMin", func() {
				ce, ok := xerrors.AsA[*tree.ConstructionError](err)
				So(ok, ShouldBeTrue)
				So(ce.Reason, ShouldEqual, tree.ErrRootSmallerThanMin)
			})
		})

		Convey("When a center coordinate is non-finite", func() {
			_, err := tree.New[tree.Node, *tree.Node](2, 1, 10, []float64{0, math.Inf(1)}, nil)

			Convey("Then it reports ErrNonFiniteCoordinate", func() {
				ce, ok := xerrors.AsA[*tree.ConstructionError](err)
				So(ok, ShouldBeTrue)
				So(ce.Reason, ShouldEqual, tree.ErrNonFiniteCoordinate)
			})
		})

		Convey("When arguments are valid", func() {
			tr, err := tree.New[tree.Node, *tree.Node](2, 1, 10, []float64{0, 0}, nil)

			Convey("Then no error is returned", func() {
				So(err, ShouldBeNil)
				So(tr, ShouldNotBeNil)
				So(tr.Roots(), ShouldHaveLength, 1)
			})
		})
	})
}
