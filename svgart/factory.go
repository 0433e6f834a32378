package svgart

import(
	"fmt"
	"math/rand"
)

// Sampled is one full draw from the config: the kind, plus every attribute, whether or not
// that kind of shape uses it.
type Sampled struct {
	Kind ShapeKind
	X, Y, RAD, RX, RY, W, H, R, G, B, OP Number
}

func (s Sampled)Shape() Shape {
	fill := Color{s.R.i, s.G.i, s.B.i}
	switch s.Kind {
	case CIRCLE:    return Circle{CX:s.X, CY:s.Y, R:s.RAD, Fill:fill, Opacity:s.OP}
	case RECTANGLE: return Rectangle{X:s.X, Y:s.Y, Width:s.W, Height:s.H, Fill:fill, Opacity:s.OP}
	default:        return Ellipse{CX:s.X, CY:s.Y, RX:s.RX, RY:s.RY, Fill:fill, Opacity:s.OP}
	}
}

// {{{ Factory

// Factory makes random shapes from a config, and keeps count of what it made.
type Factory struct {
	Config ArtConfig
	Counts map[ShapeKind]int
	Total  int

	rng *rand.Rand
}

func NewFactory(c ArtConfig, rng *rand.Rand) (*Factory, error) {
	if err := c.Check(); err != nil { return nil, err }
	if rng == nil { return nil, fmt.Errorf("NewFactory: no random source") }
	return &Factory{
		Config: c,
		Counts: map[ShapeKind]int{},
		rng: rng,
	}, nil
}

func NewSeededFactory(c ArtConfig, seed int64) (*Factory, error) {
	return NewFactory(c, rand.New(rand.NewSource(seed)))
}

// Sample draws the kind, then every attribute in a fixed order, so a given random source
// always produces the same sequence of shapes.
func (f *Factory)Sample() Sampled {
	c := f.Config
	s := Sampled{Kind: c.Shapes[f.rng.Intn(len(c.Shapes))]}
	for _,v := range []struct{ dst *Number; nr NumberRange }{
		{&s.X, c.X}, {&s.Y, c.Y}, {&s.RAD, c.RAD}, {&s.RX, c.RX}, {&s.RY, c.RY},
		{&s.W, c.W}, {&s.H, c.H}, {&s.R, c.R}, {&s.G, c.G}, {&s.B, c.B}, {&s.OP, c.OP},
	}{
		*v.dst = v.nr.Sample(f.rng)
	}
	return s
}

func (f *Factory)Create() Shape {
	shape := f.Sample().Shape()
	f.Counts[shape.Kind()]++
	f.Total++
	return shape
}

func (f *Factory)Count(k ShapeKind) int { return f.Counts[k] }

func (f *Factory)String() string {
	return fmt.Sprintf("%d shapes: %d circles, %d rectangles, %d ellipses", f.Total,
		f.Counts[CIRCLE], f.Counts[RECTANGLE], f.Counts[ELLIPSE])
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
