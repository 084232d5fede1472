package arrowdoc

import (
	"math"

	"github.com/arrowkit/ribbon"
)

// Widths used when a document specifies nothing, in pixels at the base
// zoom.
const (
	DefaultRearWidth  = 20
	DefaultNeckWidth  = 16
	DefaultHeadWidth  = 36
	DefaultHeadLength = 48
)

// Parameters size an arrow. Documents written by different versions of the
// editor use different fields; [Parameters.Resolve] reconciles them.
type Parameters struct {
	RearWidthPx  *float64 `json:"rearWidthPx" yaml:"rearWidthPx" toml:"rearWidthPx,omitempty"`
	NeckWidthPx  *float64 `json:"neckWidthPx" yaml:"neckWidthPx" toml:"neckWidthPx,omitempty"`
	HeadWidthPx  *float64 `json:"headWidthPx" yaml:"headWidthPx" toml:"headWidthPx,omitempty"`
	HeadLengthPx *float64 `json:"headLengthPx" yaml:"headLengthPx" toml:"headLengthPx,omitempty"`
	// BaseZoom is the zoom the pixel widths were chosen at.
	BaseZoom *float64 `json:"baseZoom" yaml:"baseZoom" toml:"baseZoom,omitempty"`

	// Fixed pixel sizes from older documents. The shaft had a single
	// thickness.
	ShaftThicknessPixels  *float64 `json:"shaftThicknessPixels,omitempty" yaml:"shaftThicknessPixels,omitempty" toml:"shaftThicknessPixels,omitempty"`
	ArrowHeadLengthPixels *float64 `json:"arrowHeadLengthPixels,omitempty" yaml:"arrowHeadLengthPixels,omitempty" toml:"arrowHeadLengthPixels,omitempty"`
	ArrowHeadWidthPixels  *float64 `json:"arrowHeadWidthPixels,omitempty" yaml:"arrowHeadWidthPixels,omitempty" toml:"arrowHeadWidthPixels,omitempty"`

	// Sizes relative to the length of the curve.
	ShaftThicknessFactor  *float64 `json:"shaftThicknessFactor,omitempty" yaml:"shaftThicknessFactor,omitempty" toml:"shaftThicknessFactor,omitempty"`
	ArrowHeadLengthFactor *float64 `json:"arrowHeadLengthFactor,omitempty" yaml:"arrowHeadLengthFactor,omitempty" toml:"arrowHeadLengthFactor,omitempty"`
	ArrowHeadWidthFactor  *float64 `json:"arrowHeadWidthFactor,omitempty" yaml:"arrowHeadWidthFactor,omitempty" toml:"arrowHeadWidthFactor,omitempty"`
}

// Float returns a pointer to v, for filling in [Parameters].
func Float(v float64) *float64 { return &v }

// first returns the first set, finite value.
func first(vs ...*float64) (float64, bool) {
	for _, v := range vs {
		if v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0) {
			return *v, true
		}
	}
	return 0, false
}

// Resolve returns the arrow's shape for a curve of the given length, viewed
// at zoom.
//
// Each width is taken from the first of its current pixel field, its legacy
// pixel field, its relative field times length and its default. If
// BaseZoom is set, pixel widths are scaled by 2**(zoom-BaseZoom) so the
// arrow keeps its size relative to the map. Relative widths already follow
// the curve and are not scaled again.
func (p Parameters) Resolve(length, zoom float64) ribbon.ShapeParams {
	scale := 1.0
	if base, ok := first(p.BaseZoom); ok {
		scale = ZoomScale(zoom, base)
	}
	pick := func(def float64, factor *float64, pixels ...*float64) float64 {
		if v, ok := first(pixels...); ok {
			return v * scale
		}
		if f, ok := first(factor); ok {
			return f * length
		}
		return def * scale
	}
	return ribbon.ShapeParams{
		RearWidth:  pick(DefaultRearWidth, p.ShaftThicknessFactor, p.RearWidthPx, p.ShaftThicknessPixels),
		NeckWidth:  pick(DefaultNeckWidth, p.ShaftThicknessFactor, p.NeckWidthPx, p.ShaftThicknessPixels),
		HeadWidth:  pick(DefaultHeadWidth, p.ArrowHeadWidthFactor, p.HeadWidthPx, p.ArrowHeadWidthPixels),
		HeadLength: pick(DefaultHeadLength, p.ArrowHeadLengthFactor, p.HeadLengthPx, p.ArrowHeadLengthPixels),
	}
}

// ZoomScale returns the factor by which distances grow from zoom level
// from to zoom level to.
func ZoomScale(to, from float64) float64 {
	return math.Exp2(to - from)
}
