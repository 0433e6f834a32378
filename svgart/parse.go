package svgart

import(
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// {{{ ParseSVG

// ParseSVG reads back a single shape element, as produced by Shape.SVG.
func ParseSVG(s string) (Shape, error) {
	decoder := xml.NewDecoder(strings.NewReader(s))

	var start *xml.StartElement
	for {
		tok,err := decoder.Token()
		if err == io.EOF { break }
		if err != nil { return nil, fmt.Errorf("parse '%s': %v", s, err) }

		switch t := tok.(type) {
		case xml.StartElement:
			if start != nil {
				return nil, fmt.Errorf("parse '%s': unexpected element <%s>", s, t.Name.Local)
			}
			el := t.Copy()
			start = &el
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return nil, fmt.Errorf("parse '%s': unexpected text", s)
			}
		}
	}
	if start == nil { return nil, fmt.Errorf("parse '%s': no element", s) }

	a := attrs{m: map[string]string{}}
	for _,attr := range start.Attr { a.m[attr.Name.Local] = attr.Value }

	switch start.Name.Local {
	case "circle":
		c := Circle{}
		a.numbers(&c.CX, "cx", &c.CY, "cy", &c.R, "r", &c.Opacity, "fill-opacity")
		c.Fill = a.color()
		if a.err != nil { return nil, a.wrap(s) }
		return c, nil
	case "rect":
		r := Rectangle{}
		a.numbers(&r.X, "x", &r.Y, "y", &r.Width, "width", &r.Height, "height", &r.Opacity, "fill-opacity")
		r.Fill = a.color()
		if a.err != nil { return nil, a.wrap(s) }
		return r, nil
	case "ellipse":
		e := Ellipse{}
		a.numbers(&e.CX, "cx", &e.CY, "cy", &e.RX, "rx", &e.RY, "ry", &e.Opacity, "fill-opacity")
		e.Fill = a.color()
		if a.err != nil { return nil, a.wrap(s) }
		return e, nil
	}
	return nil, fmt.Errorf("parse '%s': <%s> is not a shape", s, start.Name.Local)
}

// }}}
// {{{ attrs

// attrs picks typed values out of an element's attributes, remembering the first failure.
type attrs struct {
	m   map[string]string
	err error
}

func (a *attrs)get(name string) string {
	v,exists := a.m[name]
	if !exists && a.err == nil { a.err = fmt.Errorf("missing attribute '%s'", name) }
	return v
}

// numbers takes pairs of (*Number, attribute name)
func (a *attrs)numbers(args ...interface{}) {
	for i:=0; i+1<len(args) && a.err == nil; i+=2 {
		dst,name := args[i].(*Number), args[i+1].(string)
		v := a.get(name)
		if a.err != nil { return }
		n,err := ParseNumber(v)
		if err != nil { a.err = fmt.Errorf("%s: %v", name, err); return }
		*dst = n
	}
}

func (a *attrs)color() Color {
	if a.err != nil { return Color{} }
	v := a.get("fill")
	if a.err != nil { return Color{} }

	rgb := strings.TrimSuffix(strings.TrimPrefix(v, "rgb("), ")")
	parts := strings.Split(rgb, ",")
	if len(parts) != 3 || rgb == v {
		a.err = fmt.Errorf("fill '%s' is not rgb(R, G, B)", v)
		return Color{}
	}
	c := [3]int{}
	for i,p := range parts {
		var err error
		if c[i],err = strconv.Atoi(strings.TrimSpace(p)); err != nil {
			a.err = fmt.Errorf("fill '%s': %v", v, err)
			return Color{}
		}
	}
	return Color{c[0], c[1], c[2]}
}

func (a *attrs)wrap(s string) error {
	if a.err == nil { return nil }
	return fmt.Errorf("parse '%s': %v", s, a.err)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
