package planet

// Face names one of the six sides of a cube planet. Discriminant values
// match the order New builds roots in, so a Face converts
// directly to a root index.
type Face int

const (
	XNeg Face = iota
	XPos
	YNeg
	YPos
	ZNeg
	ZPos
)

func (f Face) String() string {
	switch f {
	case XNeg:
		return "XNeg"
	case XPos:
		return "XPos"
	case YNeg:
		return "YNeg"
	case YPos:
		return "YPos"
	case ZNeg:
		return "ZNeg"
	case ZPos:
		return "ZPos"
	default:
		return "None"
	}
}

// Normal returns the outward unit normal of f as a world-space direction.
func (f Face) Normal() []float64 {
	switch f {
	case XPos:
		return []float64{1, 0, 0}
	case XNeg:
		return []float64{-1, 0, 0}
	case YPos:
		return []float64{0, 1, 0}
	case YNeg:
		return []float64{0, -1, 0}
	case ZPos:
		return []float64{0, 0, 1}
	case ZNeg:
		return []float64{0, 0, -1}
	default:
		return []float64{0, 0, 0}
	}
}

// faceOf is the inverse of Normal for the six axis-aligned unit vectors.
func faceOf(dir []int) Face {
	switch {
	case dir[0] == 1 && dir[1] == 0 && dir[2] == 0:
		return XPos
	case dir[0] == -1 && dir[1] == 0 && dir[2] == 0:
		return XNeg
	case dir[1] == 1 && dir[0] == 0 && dir[2] == 0:
		return YPos
	case dir[1] == -1 && dir[0] == 0 && dir[2] == 0:
		return YNeg
	case dir[2] == 1 && dir[0] == 0 && dir[1] == 0:
		return ZPos
	default:
		return ZNeg
	}
}

// worldToLocal projects a world-space position onto f's own 2D face
// coordinates, dropping the axis f is normal to.
func worldToLocal(f Face, pos []float64) []float64 {
	switch f {
	case XPos, XNeg:
		return []float64{pos[1], pos[2]}
	case YPos, YNeg:
		return []float64{pos[0], pos[2]}
	default:
		return []float64{pos[0], pos[1]}
	}
}

// localToWorld rewrites the two world-space axes f's face spans with
// local, leaving the axis f is normal to (and hence fixed across the
// whole face) untouched from world.
func localToWorld(f Face, local []float64, world []float64) []float64 {
	out := append([]float64(nil), world...)

	switch f {
	case XPos, XNeg:
		out[1], out[2] = local[0], local[1]
	case YPos, YNeg:
		out[0], out[2] = local[0], local[1]
	default:
		out[0], out[1] = local[0], local[1]
	}

	return out
}
