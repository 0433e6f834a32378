package svgart

import(
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Number is an integer or a real. Sampled attributes keep whichever they were sampled as, so
// that they render the same way they were produced: 3 stays "3", 0.5 stays "0.5", and a real
// that happens to be integral renders as "1.0".
type Number struct {
	i     int
	f     float64
	isInt bool
}

func Int(i int) Number { return Number{i:i, f:float64(i), isInt:true} }
func Real(f float64) Number { return Number{f:f} }

func (n Number)IsInt() bool { return n.isInt }
func (n Number)Float() float64 { return n.f }

func (n Number)String() string {
	if n.isInt { return strconv.Itoa(n.i) }
	s := strconv.FormatFloat(n.f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") { s += ".0" }
	return s
}

// ParseNumber reads a Number back from its string form; anything with a decimal point or an
// exponent is a real.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, ".eE") {
		if i,err := strconv.Atoi(s); err == nil { return Int(i), nil }
	}
	f,err := strconv.ParseFloat(s, 64)
	if err != nil { return Number{}, fmt.Errorf("'%s' is not a number", s) }
	return Real(f), nil
}

// {{{ NumberRange

// NumberRange is the closed interval [Start, End].
type NumberRange struct {
	Start, End Number
}

func IntRange(start, end int) NumberRange { return NumberRange{Int(start), Int(end)} }
func RealRange(start, end float64) NumberRange { return NumberRange{Real(start), Real(end)} }

func (nr NumberRange)String() string { return fmt.Sprintf("(%s, %s)", nr.Start, nr.End) }

func (nr NumberRange)IsInt() bool { return nr.Start.isInt && nr.End.isInt }

func (nr NumberRange)check() error {
	if nr.Start.f > nr.End.f {
		return fmt.Errorf("range %s: start is after end", nr)
	}
	if !nr.IsInt() {
		if lo,hi := nr.grid(); lo > hi {
			return fmt.Errorf("range %s: no one-decimal value lies inside it", nr)
		}
	}
	return nil
}

// Sample picks a value in the range. Integer ranges give any integer in the range with equal
// probability; all other ranges give a real, rounded to one decimal place.
func (nr NumberRange)Sample(rng *rand.Rand) Number {
	if nr.IsInt() {
		return Int(rng.Intn(nr.End.i - nr.Start.i + 1) + nr.Start.i)
	}

	lo,hi := nr.grid()
	v := nr.Start.f + rng.Float64() * (nr.End.f - nr.Start.f)
	v = math.Round(v*10) / 10
	// Rounding can push us just outside; stay on the one-decimal grid
	if v < lo { v = lo }
	if v > hi { v = hi }
	return Real(v)
}

// grid is the smallest and largest one-decimal values inside the range.
func (nr NumberRange)grid() (lo, hi float64) {
	lo = math.Ceil(nr.Start.f*10 - 1e-9) / 10
	hi = math.Floor(nr.End.f*10 + 1e-9) / 10
	return lo, hi
}

// UnmarshalYAML reads a range written as a two element sequence, e.g. `[0.3, 0.9]`.
func (nr *NumberRange)UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: a range must be [start, end]", node.Line)
	}

	ends := [2]Number{}
	for i,n := range node.Content {
		if n.Kind != yaml.ScalarNode || (n.Tag != "!!int" && n.Tag != "!!float") {
			return fmt.Errorf("line %d: '%s' is not a number", n.Line, n.Value)
		}
		v,err := ParseNumber(n.Value)
		if err != nil { return fmt.Errorf("line %d: %v", n.Line, err) }
		if n.Tag == "!!float" && v.isInt { v = Real(v.f) }
		ends[i] = v
	}
	nr.Start,nr.End = ends[0],ends[1]
	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
