// Package render rasterizes evaluated arrows.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/arrowkit/ribbon"
	"github.com/arrowkit/ribbon/internal/arrowdoc"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Options control the raster output. Zero values select the defaults.
type Options struct {
	Width, Height int
	// Padding is the margin around the arrow, in image pixels. It is
	// limited to a quarter of the smaller image dimension.
	Padding float64
	// FontSize of the name label in points at 72 DPI. Negative disables
	// the label.
	FontSize float64
	// Handles draws the anchors' handles and their tangent lines.
	Handles bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.Padding <= 0 {
		o.Padding = 24
	}
	if o.FontSize == 0 {
		o.FontSize = 14
	}
	return o
}

var (
	fillColor   = color.RGBA{0x1f, 0x6f, 0xeb, 0xb0}
	strokeColor = color.RGBA{0x0b, 0x2e, 0x6b, 0xff}
	anchorColor = color.RGBA{0xe0, 0x1e, 0x1e, 0xff}
	handleColor = color.RGBA{0x1e, 0x3c, 0xe0, 0xff}
)

var parseFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(gomono.TTF)
})

// Image draws the arrow scaled to fit the image: the outline filled, the
// centerline stroked, the anchors (and optionally handles) as markers and
// name in the top left corner.
//
// The curve is re-flattened in image space, so the flattening tolerance
// applies to image pixels rather than to the map.
func Image(a *arrowdoc.Arrow, name string, opts Options) (image.Image, error) {
	dc, err := draw(a, name, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG draws the arrow like [Image] and encodes it as PNG.
func WritePNG(w io.Writer, a *arrowdoc.Arrow, name string, opts Options) error {
	dc, err := draw(a, name, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// drawArea returns the part of the image the arrow is fitted into.
func drawArea(opts Options) (ribbon.Rect, bool) {
	w, h := float64(opts.Width), float64(opts.Height)
	pad := min(opts.Padding, min(w, h)/4)
	dst := ribbon.Rect{X1: w, Y1: h}.Inflate(-pad, -pad)
	return dst, dst.Width() > 0 && dst.Height() > 0
}

func draw(a *arrowdoc.Arrow, name string, opts Options) (*gg.Context, error) {
	opts = opts.withDefaults()
	bounds, ok := a.Outline.BoundingBox()
	if !ok {
		return nil, errors.New("render: arrow has no outline")
	}
	if cb, ok := a.Centerline.BoundingBox(); ok {
		bounds = bounds.Union(cb)
	}
	dst, ok := drawArea(opts)
	if !ok {
		return nil, fmt.Errorf("render: image %dx%d is too small", opts.Width, opts.Height)
	}
	aff := bounds.FitAffine(dst)

	anchors := transformAnchors(a.Anchors, aff)
	cl := ribbon.NewCenterline(anchors)
	outline, ok := ribbon.OutlineFromCenterline(cl, a.Shape.Scale(aff.Scaling()))
	if !ok {
		return nil, errors.New("render: arrow has no outline at this size")
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(color.White)
	dc.Clear()

	path(dc, outline)
	dc.SetColor(fillColor)
	dc.FillPreserve()
	dc.SetColor(strokeColor)
	dc.SetLineWidth(1.5)
	dc.Stroke()

	for i, pt := range cl.Points() {
		if i == 0 {
			dc.MoveTo(pt.X, pt.Y)
		} else {
			dc.LineTo(pt.X, pt.Y)
		}
	}
	dc.SetDash(4, 3)
	dc.SetLineWidth(1)
	dc.Stroke()
	dc.SetDash()

	for _, an := range anchors {
		if opts.Handles {
			for _, h := range []*ribbon.Point{an.Handle1, an.Handle2} {
				if h == nil {
					continue
				}
				dc.SetColor(handleColor)
				dc.DrawLine(an.Pos.X, an.Pos.Y, h.X, h.Y)
				dc.Stroke()
				dc.DrawCircle(h.X, h.Y, 4)
				dc.Fill()
			}
		}
		dc.SetColor(anchorColor)
		dc.DrawCircle(an.Pos.X, an.Pos.Y, 5)
		dc.Fill()
	}

	if name != "" && opts.FontSize > 0 {
		f, err := parseFont()
		if err != nil {
			return nil, fmt.Errorf("render: parsing font: %w", err)
		}
		dc.SetFontFace(truetype.NewFace(f, &truetype.Options{
			Size:    opts.FontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		}))
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(name, 8, 8, 0, 1)
	}
	return dc, nil
}

func path(dc *gg.Context, o ribbon.Outline) {
	dc.NewSubPath()
	for i, pt := range o {
		if i == 0 {
			dc.MoveTo(pt.X, pt.Y)
		} else {
			dc.LineTo(pt.X, pt.Y)
		}
	}
	dc.ClosePath()
}

func transformAnchors(anchors []ribbon.Anchor, aff ribbon.Affine) []ribbon.Anchor {
	pos := make([]ribbon.Point, len(anchors))
	for i, an := range anchors {
		pos[i] = an.Pos
	}
	pos = aff.TransformPoints(pos)

	out := make([]ribbon.Anchor, len(anchors))
	for i, an := range anchors {
		out[i] = ribbon.Anchor{ID: an.ID, Pos: pos[i]}
		if an.Handle1 != nil {
			h := an.Handle1.Transform(aff)
			out[i].Handle1 = &h
		}
		if an.Handle2 != nil {
			h := an.Handle2.Transform(aff)
			out[i].Handle2 = &h
		}
	}
	return out
}
