package svgart

import(
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrConfig means an art configuration can't be used to generate shapes.
var ErrConfig = errors.New("bad art config")

// ArtConfig drives the shape factory: which kinds of shape to make, and the range each sampled
// attribute is drawn from.
type ArtConfig struct {
	Shapes []ShapeKind

	X, Y    NumberRange // position
	RAD     NumberRange // circle radius
	RX, RY  NumberRange // ellipse radii
	W, H    NumberRange // rectangle size
	R, G, B NumberRange // fill colour
	OP      NumberRange // fill opacity
}

func DefaultConfig() ArtConfig {
	return ArtConfig{
		Shapes: []ShapeKind{RECTANGLE, CIRCLE, ELLIPSE},
		X:   IntRange(0, 500),
		Y:   IntRange(0, 300),
		RAD: IntRange(1, 5),
		RX:  IntRange(5, 10),
		RY:  IntRange(10, 30),
		W:   IntRange(10, 15),
		H:   IntRange(30, 80),
		R:   IntRange(150, 255),
		G:   IntRange(0, 90),
		B:   IntRange(0, 95),
		OP:  RealRange(0.3, 0.9),
	}
}

// named lists the ranges in sampling order, with the names used in config files and printouts.
func (c *ArtConfig)named() []struct{ Name string; R *NumberRange } {
	return []struct{ Name string; R *NumberRange }{
		{"X", &c.X}, {"Y", &c.Y}, {"RAD", &c.RAD}, {"RX", &c.RX}, {"RY", &c.RY},
		{"W", &c.W}, {"H", &c.H}, {"R", &c.R}, {"G", &c.G}, {"B", &c.B}, {"OP", &c.OP},
	}
}

// {{{ c.Check

func (c ArtConfig)Check() error {
	if len(c.Shapes) == 0 { return fmt.Errorf("%w: no shape kinds", ErrConfig) }
	for _,k := range c.Shapes {
		if k < CIRCLE || k > ELLIPSE { return fmt.Errorf("%w: unknown shape %s", ErrConfig, k) }
	}

	for _,nr := range c.named() {
		if err := nr.R.check(); err != nil { return fmt.Errorf("%w: %s %v", ErrConfig, nr.Name, err) }
	}

	for _,nr := range []NumberRange{c.R, c.G, c.B} {
		if !nr.IsInt() || nr.Start.i < 0 || nr.End.i > 255 {
			return fmt.Errorf("%w: colour range %s must be integers in [0,255]", ErrConfig, nr)
		}
	}
	if c.OP.Start.f < 0 || c.OP.End.f > 1 {
		return fmt.Errorf("%w: opacity range %s must be within [0,1]", ErrConfig, c.OP)
	}
	return nil
}

// }}}
// {{{ c.String

func (c ArtConfig)String() string {
	shapes := []string{}
	for _,k := range c.Shapes { shapes = append(shapes, k.String()) }

	str := "\nUser-defined art configuration\n"
	str += fmt.Sprintf("Shape types = (%s)\n", strings.Join(shapes, ", "))
	for _,nr := range c.named() {
		str += fmt.Sprintf("%s(%smin, %smax) = %s\n", nr.Name, nr.Name, nr.Name, *nr.R)
	}
	return str
}

// }}}
// {{{ LoadConfig

// configFile is the YAML layout, e.g.
//   shapes: [CIRCLE, ELLIPSE]
//   x: [0, 500]
//   op: [0.3, 0.9]
// Ranges that are left out keep their defaults.
type configFile struct {
	Shapes []string     `yaml:"shapes"`
	X      *NumberRange `yaml:"x"`
	Y      *NumberRange `yaml:"y"`
	RAD    *NumberRange `yaml:"rad"`
	RX     *NumberRange `yaml:"rx"`
	RY     *NumberRange `yaml:"ry"`
	W      *NumberRange `yaml:"w"`
	H      *NumberRange `yaml:"h"`
	R      *NumberRange `yaml:"r"`
	G      *NumberRange `yaml:"g"`
	B      *NumberRange `yaml:"b"`
	OP     *NumberRange `yaml:"op"`
}

func LoadConfig(r io.Reader) (ArtConfig, error) {
	cf := configFile{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cf); err != nil && err != io.EOF {
		return ArtConfig{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	c := DefaultConfig()
	if cf.Shapes != nil {
		c.Shapes = []ShapeKind{}
		for _,name := range cf.Shapes {
			k,err := ParseShapeKind(name)
			if err != nil { return ArtConfig{}, err }
			c.Shapes = append(c.Shapes, k)
		}
	}

	for _,set := range []struct{ from, to *NumberRange }{
		{cf.X, &c.X}, {cf.Y, &c.Y}, {cf.RAD, &c.RAD}, {cf.RX, &c.RX}, {cf.RY, &c.RY},
		{cf.W, &c.W}, {cf.H, &c.H}, {cf.R, &c.R}, {cf.G, &c.G}, {cf.B, &c.B}, {cf.OP, &c.OP},
	}{
		if set.from != nil { *set.to = *set.from }
	}

	if err := c.Check(); err != nil { return ArtConfig{}, err }
	return c, nil
}

func LoadConfigFile(path string) (ArtConfig, error) {
	f,err := os.Open(path)
	if err != nil { return ArtConfig{}, fmt.Errorf("%w: %v", ErrConfig, err) }
	defer f.Close()
	return LoadConfig(f)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
