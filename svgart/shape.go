package svgart

import(
	"fmt"
	"strings"
)

type Color struct {
	Red, Green, Blue int
}

func (c Color)String() string { return fmt.Sprintf("rgb(%d, %d, %d)", c.Red, c.Green, c.Blue) }

var(
	Red  = Color{255, 0, 0}
	Blue = Color{0, 0, 255}
)

// {{{ ShapeKind

type ShapeKind int
const(
	CIRCLE ShapeKind = iota
	RECTANGLE
	ELLIPSE
)

var shapeKindNames = []string{"CIRCLE", "RECTANGLE", "ELLIPSE"}

func (k ShapeKind)String() string {
	if k < 0 || int(k) >= len(shapeKindNames) { return fmt.Sprintf("ShapeKind(%d)", int(k)) }
	return shapeKindNames[k]
}

func ParseShapeKind(s string) (ShapeKind, error) {
	for i,name := range shapeKindNames {
		if strings.EqualFold(strings.TrimSpace(s), name) { return ShapeKind(i), nil }
	}
	return CIRCLE, fmt.Errorf("%w: unknown shape '%s'", ErrConfig, s)
}

// }}}

// A Shape is something that can be drawn on the canvas.
type Shape interface {
	Kind() ShapeKind
	SVG() string
}

// {{{ Circle, Rectangle, Ellipse

type Circle struct {
	CX, CY, R Number
	Fill      Color
	Opacity   Number
}

func (c Circle)Kind() ShapeKind { return CIRCLE }
func (c Circle)SVG() string {
	return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="%s" fill-opacity="%s"></circle>`,
		c.CX, c.CY, c.R, c.Fill, c.Opacity)
}

type Rectangle struct {
	X, Y, Width, Height Number
	Fill                Color
	Opacity             Number
}

func (r Rectangle)Kind() ShapeKind { return RECTANGLE }
func (r Rectangle)SVG() string {
	return fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" fill-opacity="%s"></rect>`,
		r.X, r.Y, r.Width, r.Height, r.Fill, r.Opacity)
}

type Ellipse struct {
	CX, CY, RX, RY Number
	Fill           Color
	Opacity        Number
}

func (e Ellipse)Kind() ShapeKind { return ELLIPSE }
func (e Ellipse)SVG() string {
	return fmt.Sprintf(`<ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s" fill-opacity="%s"></ellipse>`,
		e.CX, e.CY, e.RX, e.RY, e.Fill, e.Opacity)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
