package ribbon

// Anchor is a user-placed point the centerline passes through.
//
// Handle1 biases the curve arriving at the anchor from the previous one,
// Handle2 the curve leaving towards the next one. A nil handle makes the
// adjacent segment leave (or arrive) in a straight line at that end.
type Anchor struct {
	ID      string
	Pos     Point
	Handle1 *Point
	Handle2 *Point
}

// Segment is the cubic Bézier between two consecutive anchors.
type Segment struct {
	// Index is the segment's position in the list it was built into.
	Index int
	P0    Point
	CP1   Point
	CP2   Point
	P3    Point
}

// Cubic returns the segment as a [CubicBez].
func (seg Segment) Cubic() CubicBez {
	return CubicBez{seg.P0, seg.CP1, seg.CP2, seg.P3}
}

// BuildSegments turns an ordered list of anchors into one segment per
// consecutive pair. Missing handles default to the anchor's own position.
//
// Fewer than two anchors produce no segments, which downstream functions
// treat as "no curve".
func BuildSegments(anchors []Anchor) []Segment {
	if len(anchors) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(anchors)-1)
	for i := 1; i < len(anchors); i++ {
		a0, a1 := anchors[i-1], anchors[i]
		cp1, cp2 := a0.Pos, a1.Pos
		if a0.Handle2 != nil {
			cp1 = *a0.Handle2
		}
		if a1.Handle1 != nil {
			cp2 = *a1.Handle1
		}
		segs = append(segs, Segment{
			Index: i - 1,
			P0:    a0.Pos,
			CP1:   cp1,
			CP2:   cp2,
			P3:    a1.Pos,
		})
	}
	return segs
}
