package svgart

// go test -v github.com/skypies/routeart/svgart

import(
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"
)

// {{{ bufCloser

type bufCloser struct {
	bytes.Buffer
	closes int
}
func (b *bufCloser)Close() error { b.closes++; return nil }

type brokenWriter struct{ closes int }
func (b *brokenWriter)Write([]byte) (int, error) { return 0, fmt.Errorf("broken pipe") }
func (b *brokenWriter)Close() error { b.closes++; return nil }

// }}}

func TestNumberString(t *testing.T) {
	tests := []struct{
		N        Number
		Expected string
	}{
		{Int(3), "3"},
		{Int(-40), "-40"},
		{Real(1.0), "1.0"},
		{Real(0.5), "0.5"},
		{Real(0.3), "0.3"},
		{Real(250), "250.0"},
	}
	for _,test := range tests {
		if got := test.N.String(); got != test.Expected {
			t.Errorf("'%v' - expected '%s', got '%s'", test.N.f, test.Expected, got)
		}
		back,err := ParseNumber(test.Expected)
		if err != nil || back != test.N {
			t.Errorf("'%s' - didn't parse back (got %#v, err %v)", test.Expected, back, err)
		}
	}
}

func TestShapeSVG(t *testing.T) {
	tests := []struct{
		S        Shape
		Expected string
	}{
		{
			Circle{CX:Int(50), CY:Int(250), R:Int(50), Fill:Blue, Opacity:Real(1.0)},
			`<circle cx="50" cy="250" r="50" fill="rgb(0, 0, 255)" fill-opacity="1.0"></circle>`,
		},
		{
			Rectangle{X:Int(1), Y:Int(2), Width:Int(10), Height:Int(30), Fill:Color{150, 0, 95}, Opacity:Real(0.3)},
			`<rect x="1" y="2" width="10" height="30" fill="rgb(150, 0, 95)" fill-opacity="0.3"></rect>`,
		},
		{
			Ellipse{CX:Int(7), CY:Int(8), RX:Int(5), RY:Int(29), Fill:Red, Opacity:Real(0.9)},
			`<ellipse cx="7" cy="8" rx="5" ry="29" fill="rgb(255, 0, 0)" fill-opacity="0.9"></ellipse>`,
		},
	}

	for _,test := range tests {
		if got := test.S.SVG(); got != test.Expected {
			t.Errorf("'%s' - expected\n%s\n, got\n%s", test.S.Kind(), test.Expected, got)
		}
		back,err := ParseSVG(test.Expected)
		if err != nil {
			t.Errorf("'%s' - parse failed: %v", test.S.Kind(), err)
		} else if back != test.S {
			t.Errorf("'%s' - round trip: expected %#v, got %#v", test.S.Kind(), test.S, back)
		}
	}
}

func TestParseSVGErrors(t *testing.T) {
	tests := []string{
		``,
		`<polygon points="1,2"></polygon>`,
		`<circle cx="1" cy="2" fill="rgb(0, 0, 0)" fill-opacity="1.0"></circle>`,   // no r
		`<circle cx="1" cy="2" r="x" fill="rgb(0, 0, 0)" fill-opacity="1.0"></circle>`,
		`<circle cx="1" cy="2" r="3" fill="red" fill-opacity="1.0"></circle>`,
		`<circle cx="1" cy="2" r="3" fill="rgb(0, 0, 0)" fill-opacity="1.0"><circle`,
		`<rect x="1"></rect><rect x="2"></rect>`,
	}
	for _,s := range tests {
		if _,err := ParseSVG(s); err == nil {
			t.Errorf("'%s' - expected an error", s)
		}
	}
}

func TestSampleRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(265))

	ir := IntRange(0, 500)
	seen := map[int]bool{}
	for i:=0; i<10000; i++ {
		n := ir.Sample(rng)
		if !n.IsInt() || n.i < 0 || n.i > 500 {
			t.Fatalf("'%s' - sample %s out of range", ir, n)
		}
		seen[n.i] = true
	}
	if !seen[0] || !seen[500] {
		t.Errorf("'%s' - endpoints never sampled in 10000 draws", ir)
	}

	rr := RealRange(0.3, 0.9)
	for i:=0; i<10000; i++ {
		n := rr.Sample(rng)
		if n.IsInt() || n.f < 0.3 || n.f > 0.9 {
			t.Fatalf("'%s' - sample %s out of range", rr, n)
		}
		if math.Abs(n.f*10 - math.Round(n.f*10)) > 1e-9 {
			t.Fatalf("'%s' - sample %s has more than one decimal", rr, n)
		}
	}

	// Mixed endpoints sample reals
	if n := (NumberRange{Int(0), Real(1.5)}).Sample(rng); n.IsInt() {
		t.Errorf("mixed range - expected a real, got %s", n)
	}
	if n := IntRange(7, 7).Sample(rng); n != Int(7) {
		t.Errorf("'(7, 7)' - expected 7, got %s", n)
	}
}

func TestFactoryCounts(t *testing.T) {
	f,err := NewSeededFactory(DefaultConfig(), 1)
	if err != nil { t.Fatal(err) }

	for i:=0; i<300; i++ { f.Create() }
	sum := 0
	for _,k := range []ShapeKind{CIRCLE, RECTANGLE, ELLIPSE} {
		if f.Count(k) == 0 { t.Errorf("'%s' - never created in 300 shapes", k) }
		sum += f.Count(k)
	}
	if sum != 300 || f.Total != 300 {
		t.Errorf("expected 300 shapes, got total %d, sum %d", f.Total, sum)
	}

	// Counters are per factory
	g,_ := NewSeededFactory(DefaultConfig(), 1)
	if g.Total != 0 || g.Count(CIRCLE) != 0 {
		t.Errorf("new factory - expected zero counts, got %s", g)
	}

	// Sampling doesn't count
	g.Sample()
	if g.Total != 0 {
		t.Errorf("Sample() - expected no count, got %d", g.Total)
	}
}

func TestFactoryReproducible(t *testing.T) {
	a,_ := NewSeededFactory(DefaultConfig(), 42)
	b,_ := NewSeededFactory(DefaultConfig(), 42)
	for i:=0; i<50; i++ {
		if sa,sb := a.Create().SVG(), b.Create().SVG(); sa != sb {
			t.Fatalf("shape %d - same seed, different shapes:\n%s\n%s", i, sa, sb)
		}
	}
}

func TestFactoryOnlyConfiguredKinds(t *testing.T) {
	c := DefaultConfig()
	c.Shapes = []ShapeKind{ELLIPSE}
	f,err := NewSeededFactory(c, 7)
	if err != nil { t.Fatal(err) }
	for i:=0; i<100; i++ {
		s := f.Create()
		if _,ok := s.(Ellipse); !ok { t.Fatalf("expected only ellipses, got %s", s.SVG()) }
	}
}

func TestDocument(t *testing.T) {
	buf := &bufCloser{}
	d,err := NewDocument(buf, "My art")
	if err != nil { t.Fatal(err) }

	d.OpenBody()
	d.OpenCanvas(500, 300)
	AppendShapes(d, FixedLayout()[:1])
	d.CloseCanvas()
	d.CloseBody()
	if err := d.Close(); err != nil { t.Fatal(err) }

	expected := strings.Join([]string{
		"<html>",
		"<head>",
		"    <title>My art</title>",
		"</head>",
		"<body>",
		"    <!--Define SVG drawing box-->",
		`    <svg width="500" height="300">`,
		`        <circle cx="50" cy="50" r="50" fill="rgb(255, 0, 0)" fill-opacity="1.0"></circle>`,
		"    </svg>",
		"</body>",
		"</html>",
		"",
	}, "\n")
	if buf.String() != expected {
		t.Errorf("expected\n%s\n, got\n%s", expected, buf.String())
	}
	if buf.closes != 1 {
		t.Errorf("expected sink to be closed once, got %d", buf.closes)
	}
}

func TestDocumentAfterClose(t *testing.T) {
	buf := &bufCloser{}
	d,_ := NewDocument(buf, "x")
	d.Close()
	n := buf.Len()

	for name,f := range map[string]func() error{
		"Append": func() error { return d.Append("<p/>") },
		"IncreaseIndent": d.IncreaseIndent,
		"DecreaseIndent": d.DecreaseIndent,
		"OpenBody": d.OpenBody,
		"Comment": func() error { return d.Comment("hi") },
		"OpenCanvas": func() error { return d.OpenCanvas(1, 1) },
		"Close": d.Close,
	}{
		if err := f(); !errors.Is(err, ErrDocumentClosed) {
			t.Errorf("'%s' - expected ErrDocumentClosed, got %v", name, err)
		}
	}
	if buf.Len() != n || buf.closes != 1 {
		t.Errorf("closed document was written to (%d->%d bytes, %d closes)", n, buf.Len(), buf.closes)
	}
}

func TestDocumentIndentFloor(t *testing.T) {
	buf := &bufCloser{}
	d,_ := NewDocument(buf, "x")
	d.DecreaseIndent()
	d.DecreaseIndent()
	if d.Indent() != 0 {
		t.Errorf("expected indent 0, got %d", d.Indent())
	}
	d.Append("<p/>")
	if !strings.HasSuffix(buf.String(), "</head>\n<p/>\n") {
		t.Errorf("unexpected indent in\n%s", buf.String())
	}
}

func TestDocumentWriteError(t *testing.T) {
	w := &brokenWriter{}
	if _,err := NewDocument(w, "x"); err == nil {
		t.Errorf("expected an error from a broken writer")
	}
	if w.closes != 1 {
		t.Errorf("expected the writer to be closed, got %d closes", w.closes)
	}
}

func TestGenerateArt(t *testing.T) {
	buf := &bufCloser{}
	d,_ := NewDocument(buf, "x")
	f,_ := NewSeededFactory(DefaultConfig(), 3)
	if err := GenerateArt(d, f, 25); err != nil { t.Fatal(err) }
	d.Close()

	shapes := 0
	for _,line := range strings.Split(buf.String(), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "<circle") || strings.HasPrefix(line, "<rect") || strings.HasPrefix(line, "<ellipse") {
			if _,err := ParseSVG(line); err != nil { t.Errorf("generated shape didn't parse: %v", err) }
			shapes++
		}
	}
	if shapes != 25 || f.Total != 25 {
		t.Errorf("expected 25 shapes, found %d (factory total %d)", shapes, f.Total)
	}
}

func TestWriteShapeTable(t *testing.T) {
	c := DefaultConfig()
	c.Shapes = []ShapeKind{CIRCLE}
	c.X, c.Y = IntRange(10, 10), IntRange(20, 20)
	c.RAD, c.RX, c.RY, c.W, c.H = IntRange(1, 1), IntRange(5, 5), IntRange(10, 10), IntRange(12, 12), IntRange(30, 30)
	c.R, c.G, c.B, c.OP = IntRange(200, 200), IntRange(0, 0), IntRange(9, 9), RealRange(0.5, 0.5)
	f,err := NewSeededFactory(c, 1)
	if err != nil { t.Fatal(err) }

	var buf bytes.Buffer
	if err := WriteShapeTable(&buf, f, 2); err != nil { t.Fatal(err) }

	expected := "CNT SHA X   Y   RAD RX  RY  W   H   R   G   B   OP  \n" +
		"   0   0  10  20   1   5  10  12  30 200   0   9 0.5\n" +
		"   1   0  10  20   1   5  10  12  30 200   0   9 0.5\n"
	if buf.String() != expected {
		t.Errorf("expected\n%s\n, got\n%s", expected, buf.String())
	}
}

func TestLoadConfig(t *testing.T) {
	in := `
shapes: [CIRCLE, ellipse]
x: [0, 250]
op: [0.1, 1.0]
`
	c,err := LoadConfig(strings.NewReader(in))
	if err != nil { t.Fatal(err) }

	if len(c.Shapes) != 2 || c.Shapes[0] != CIRCLE || c.Shapes[1] != ELLIPSE {
		t.Errorf("shapes - expected [CIRCLE ELLIPSE], got %v", c.Shapes)
	}
	if c.X != IntRange(0, 250) {
		t.Errorf("x - expected (0, 250), got %s", c.X)
	}
	if c.OP != RealRange(0.1, 1.0) || c.OP.String() != "(0.1, 1.0)" {
		t.Errorf("op - expected (0.1, 1.0), got %s", c.OP)
	}
	if c.Y != IntRange(0, 300) {
		t.Errorf("y - expected default (0, 300), got %s", c.Y)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []string{
		"shapes: [TRIANGLE]\n",
		"x: [500, 0]\n",
		"x: [1, 2, 3]\n",
		"x: [a, b]\n",
		"r: [0.5, 200]\n",
		"g: [0, 300]\n",
		"op: [0.5, 2]\n",
		"colour: [1, 2]\n",
		"x: [0, \n",
	}
	for _,in := range tests {
		if _,err := LoadConfig(strings.NewReader(in)); !errors.Is(err, ErrConfig) {
			t.Errorf("'%s' - expected ErrConfig, got %v", strings.TrimSpace(in), err)
		}
	}

	if c,err := LoadConfig(strings.NewReader("")); err != nil || c.String() != DefaultConfig().String() {
		t.Errorf("empty config - expected the defaults, got %v", err)
	}
}

func TestConfigString(t *testing.T) {
	s := DefaultConfig().String()
	for _,line := range []string{
		"User-defined art configuration",
		"Shape types = (RECTANGLE, CIRCLE, ELLIPSE)",
		"X(Xmin, Xmax) = (0, 500)",
		"OP(OPmin, OPmax) = (0.3, 0.9)",
	}{
		if !strings.Contains(s, line+"\n") {
			t.Errorf("'%s' - missing from\n%s", line, s)
		}
	}
}

func TestSampleOffGridRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tests := []struct{
		NumberRange
		Lo, Hi float64
	}{
		{RealRange(0.33, 0.36), 0.4, 0.3}, // no one-decimal value inside
		{RealRange(0.33, 0.47), 0.4, 0.4},
		{RealRange(0.25, 0.61), 0.3, 0.6},
	}
	for _,test := range tests {
		if test.Lo > test.Hi {
			if err := test.NumberRange.check(); err == nil {
				t.Errorf("'%s' - expected the range to be rejected", test.NumberRange)
			}
			continue
		}
		for i:=0; i<1000; i++ {
			n := test.Sample(rng)
			if n.f < test.Lo-1e-9 || n.f > test.Hi+1e-9 {
				t.Fatalf("'%s' - sample %s outside [%v,%v]", test.NumberRange, n, test.Lo, test.Hi)
			}
			if s := n.String(); len(s) - strings.Index(s, ".") != 2 {
				t.Fatalf("'%s' - sample %s doesn't have exactly one decimal", test.NumberRange, s)
			}
		}
	}

	if _,err := LoadConfig(strings.NewReader("op: [0.33, 0.36]\n")); !errors.Is(err, ErrConfig) {
		t.Errorf("'op: [0.33, 0.36]' - expected ErrConfig, got %v", err)
	}
}

func TestParseSVGErrorReturnsNoShape(t *testing.T) {
	for _,s := range []string{
		`<circle cx="1" cy="2" fill="rgb(0, 0, 0)" fill-opacity="1.0"></circle>`,
		`<rect x="1" y="2" width="3" height="4" fill="blue" fill-opacity="1.0"></rect>`,
		`<ellipse cx="1" cy="2" rx="3" ry="z" fill="rgb(0, 0, 0)" fill-opacity="1.0"></ellipse>`,
	}{
		if shape,err := ParseSVG(s); err == nil || shape != nil {
			t.Errorf("'%s' - expected (nil, err), got (%#v, %v)", s, shape, err)
		}
	}
}
