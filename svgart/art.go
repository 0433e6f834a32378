package svgart

import(
	"fmt"
	"io"
	"strings"
)

// FixedLayout is the hand-placed picture: a row of five red circles above a row of five blue.
func FixedLayout() []Shape {
	shapes := []Shape{}
	for _,row := range []struct{ cy int; fill Color }{ {50, Red}, {250, Blue} } {
		for cx := 50; cx < 500; cx += 100 {
			shapes = append(shapes, Circle{CX:Int(cx), CY:Int(row.cy), R:Int(50), Fill:row.fill, Opacity:Real(1.0)})
		}
	}
	return shapes
}

func AppendShapes(d *Document, shapes []Shape) error {
	for _,s := range shapes {
		if err := d.Append(s.SVG()); err != nil { return err }
	}
	return nil
}

// GenerateArt appends n shapes from the factory.
func GenerateArt(d *Document, f *Factory, n int) error {
	for i:=0; i<n; i++ {
		if err := d.Append(f.Create().SVG()); err != nil { return err }
	}
	return nil
}

// {{{ WriteShapeTable

var shapeTableHeaders = []string{"CNT", "SHA", "X", "Y", "RAD", "RX", "RY", "W", "H", "R", "G", "B", "OP"}

// WriteShapeTable prints n sampled shapes as a table, one row per shape. SHA is the kind's
// number (CIRCLE is 0); the shapes are sampled, not created, so the factory's counts don't move.
func WriteShapeTable(w io.Writer, f *Factory, n int) error {
	var sb strings.Builder
	for _,h := range shapeTableHeaders { fmt.Fprintf(&sb, "%-4s", h) }
	sb.WriteString("\n")
	if _,err := io.WriteString(w, sb.String()); err != nil { return err }

	for i:=0; i<n; i++ {
		s := f.Sample()
		sb.Reset()
		fmt.Fprintf(&sb, "%4d%4d", i, int(s.Kind))
		for _,v := range []Number{s.X, s.Y, s.RAD, s.RX, s.RY, s.W, s.H, s.R, s.G, s.B, s.OP} {
			fmt.Fprintf(&sb, "%4s", v)
		}
		sb.WriteString("\n")
		if _,err := io.WriteString(w, sb.String()); err != nil { return err }
	}
	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
