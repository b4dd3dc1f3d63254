package planet

import "github.com/flier/spatialtree/pkg/tree"

// faceTransfer is one entry of the boundary table: crossing fromFace along
// a direction matching match resolves to toFace, rewriting descents (and
// the query direction) with transform.
type faceTransfer struct {
	match     func(dir []int) bool
	toFace    Face
	transform tree.Transform
}

func negX(dir []int) bool { return dir[0] == -1 }
func posX(dir []int) bool { return dir[0] == 1 }
func negY(dir []int) bool { return dir[1] == -1 }
func posY(dir []int) bool { return dir[1] == 1 }

// boundaryTable transcribes map_to_neighbor: for each face, the match
// arms are tried in order (negative-X, positive-X, negative-Y,
// positive-Y) against a direction known to have exactly one nonzero
// component, so at most one arm ever matches.
var boundaryTable = map[Face][]faceTransfer{
	XPos: {
		{negX, YNeg, tree.Transform{Kind: tree.NoTransform}},
		{posX, YPos, tree.Transform{Kind: tree.MirrorTransform, Axis: 0}},
		{negY, ZNeg, tree.Transform{Kind: tree.RotateMirrorTransform, Clockwise: true, Axis: 1}},
		{posY, ZPos, tree.Transform{Kind: tree.RotateTransform, Clockwise: false}},
	},
	XNeg: {
		{negX, YNeg, tree.Transform{Kind: tree.MirrorTransform, Axis: 0}},
		{posX, YPos, tree.Transform{Kind: tree.NoTransform}},
		{negY, ZNeg, tree.Transform{Kind: tree.RotateTransform, Clockwise: false}},
		{posY, ZPos, tree.Transform{Kind: tree.RotateMirrorTransform, Clockwise: true, Axis: 1}},
	},
	YPos: {
		{negX, XNeg, tree.Transform{Kind: tree.NoTransform}},
		{posX, XPos, tree.Transform{Kind: tree.MirrorTransform, Axis: 0}},
		{negY, ZNeg, tree.Transform{Kind: tree.NoTransform}},
		{posY, ZPos, tree.Transform{Kind: tree.MirrorTransform, Axis: 1}},
	},
	YNeg: {
		{negX, XNeg, tree.Transform{Kind: tree.MirrorTransform, Axis: 0}},
		{posX, XPos, tree.Transform{Kind: tree.NoTransform}},
		{negY, ZNeg, tree.Transform{Kind: tree.MirrorTransform, Axis: 1}},
		{posY, ZPos, tree.Transform{Kind: tree.NoTransform}},
	},
	ZPos: {
		{negX, XNeg, tree.Transform{Kind: tree.RotateMirrorTransform, Clockwise: true, Axis: 1}},
		{posX, XPos, tree.Transform{Kind: tree.RotateTransform, Clockwise: true}},
		{negY, YNeg, tree.Transform{Kind: tree.NoTransform}},
		{posY, YPos, tree.Transform{Kind: tree.MirrorTransform, Axis: 1}},
	},
	ZNeg: {
		{negX, XNeg, tree.Transform{Kind: tree.RotateTransform, Clockwise: true}},
		{posX, XPos, tree.Transform{Kind: tree.RotateMirrorTransform, Clockwise: true, Axis: 1}},
		{negY, YNeg, tree.Transform{Kind: tree.MirrorTransform, Axis: 1}},
		{posY, YPos, tree.Transform{Kind: tree.NoTransform}},
	},
}

// boundary resolves a neighbor query's working direction, still nonzero
// once ascent reached node's root face, to a target root index and the
// Transform to rewrite every recorded descent with. This is the
// tree.Policy.Boundary hook.
func boundary(node *Node, dir []int) (int, tree.Transform, bool) {
	for _, entry := range boundaryTable[node.Face()] {
		if entry.match(dir) {
			return int(entry.toFace), entry.transform, true
		}
	}

	return 0, tree.Transform{}, false
}
