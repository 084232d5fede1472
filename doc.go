// Package ribbon turns user-drawn Bézier curves into arrow outlines.
//
// A curve is a sequence of [Anchor]s, each with optional handles. Adjacent
// anchors form cubic [Segment]s, which are flattened adaptively into a
// [Centerline]: samples indexed by arc length, each carrying a position, a
// unit tangent and a unit normal whose sign never flips between
// neighbors. [OutlineFromCenterline] sweeps a tapered shaft and a
// triangular head along the centerline and returns the result as a closed
// polygon ring.
//
// # Pipeline
//
//	anchors := []ribbon.Anchor{{Pos: ribbon.Pt(0, 0)}, {Pos: ribbon.Pt(100, 0)}}
//	cl := ribbon.NewCenterline(anchors)
//	outline, ok := ribbon.OutlineFromCenterline(cl, ribbon.ShapeParams{
//		RearWidth:  10,
//		NeckWidth:  10,
//		HeadWidth:  20,
//		HeadLength: 20,
//	})
//
// Centerlines and outlines can be densified for export with
// [Centerline.Densify] and [Outline.Densify]; [CenterlineExportStep] and
// [OutlineExportStep] are the step sizes used by the exporters in this
// module.
//
// # Units
//
// The engine is unit-agnostic. Callers project their input (map
// coordinates, screen pixels) into a plane first and scale [ShapeParams] to
// the same unit.
//
// # Degenerate input
//
// Nothing in this package panics on degenerate input. Fewer than two
// anchors produce an empty centerline; zero-length curves produce no
// outline; vanishing derivatives fall back to finite differences, chords
// and finally a fixed axis. Absence is reported with a boolean, following
// the comma-ok convention.
//
// # Logging
//
// The package logs nothing by default. See [SetLogger].
package ribbon
