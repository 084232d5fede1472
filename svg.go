package ribbon

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// WriteSVG writes pts as SVG path commands to w: a move to the first point
// followed by lines to the rest. If closed is true the path is closed with
// Z, and a last point equal to the first is not repeated.
//
// Non-finite points are written as they are formatted by strconv; callers
// are expected to filter them.
func WriteSVG(w io.Writer, pts []Point, closed bool, opts SVGOptions) error {
	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		if s == "-0" {
			s = "0"
		}
		return s
	}
	for i, pt := range pts {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		} else {
			writef(" ")
		}
		writef("%s%s,%s", cmd, format(pt.X), format(pt.Y))
	}
	if closed && len(pts) > 0 {
		writef(" Z")
	}
	return err
}

// SVG returns the outline as a closed SVG path.
func (o Outline) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, o, true, opts)
	return sb.String()
}

// SVG returns the centerline's samples as an open SVG path.
func (cl Centerline) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, cl.Points(), false, opts)
	return sb.String()
}
