package render

import (
	"errors"
	"fmt"
	"html"
	"io"

	"github.com/arrowkit/ribbon"
	"github.com/arrowkit/ribbon/internal/arrowdoc"
)

// WriteSVG writes the arrow as a standalone SVG document in its own pixel
// space: the outline as a filled path and the centerline as a dashed one.
func WriteSVG(w io.Writer, a *arrowdoc.Arrow, name string) error {
	bounds, ok := a.Outline.BoundingBox()
	if !ok {
		return errors.New("render: arrow has no outline")
	}
	bounds = bounds.Inflate(4, 4)
	opts := ribbon.SVGOptions{MaxPrecision: 3}

	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	writef(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g">`+"\n",
		bounds.X0, bounds.Y0, bounds.Width(), bounds.Height())
	if name != "" {
		writef("<title>%s</title>\n", html.EscapeString(name))
	}
	writef(`<path fill="#1f6feb" fill-opacity="0.7" stroke="#0b2e6b" d="%s"/>`+"\n", a.Outline.SVG(opts))
	writef(`<path fill="none" stroke="#0b2e6b" stroke-dasharray="4 3" d="%s"/>`+"\n", a.Centerline.SVG(opts))
	writef("</svg>\n")
	return err
}
