package table

import(
	"fmt"
	"math"
	"strconv"
	"strings"
)

// {{{ keyOf

// keyOf turns a cell into a comparable key for joins and grouping. Numbers are normalised so
// that int64(7) and float64(7) collide. Nulls have no key, and never match anything.
func keyOf(v Value) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return "s:" + x, true
	case int:
		return "n:" + strconv.FormatInt(int64(x), 10), true
	case int64:
		return "n:" + strconv.FormatInt(x, 10), true
	case float64:
		if math.IsNaN(x) { return "", false }
		if x == math.Trunc(x) && math.Abs(x) < 1e18 {
			return "n:" + strconv.FormatInt(int64(x), 10), true
		}
		return "n:" + strconv.FormatFloat(x, 'g', -1, 64), true
	default:
		return "o:" + fmt.Sprintf("%v", x), true
	}
}

// }}}
// {{{ Float

// Float reads a cell as a number; numeric strings are accepted (altitudes sometimes arrive
// quoted).
func Float(v Value) (float64, error) {
	switch x := v.(type) {
	case int:     return float64(x), nil
	case int64:   return float64(x), nil
	case float64: return x, nil
	case string:
		f,err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil { return 0, fmt.Errorf("not a number: %q", x) }
		return f, nil
	case nil:
		return 0, fmt.Errorf("null value")
	default:
		return 0, fmt.Errorf("not a number: %v (%T)", x, x)
	}
}

// }}}
// {{{ Format, FormatFloat

// Format renders a cell the way a person expects to read it: ints bare, floats always with a
// decimal point (1234.0), nulls as nan.
func Format(v Value) string {
	switch x := v.(type) {
	case nil:     return "nan"
	case string:  return x
	case int:     return strconv.Itoa(x)
	case int64:   return strconv.FormatInt(x, 10)
	case float64: return FormatFloat(x)
	default:      return fmt.Sprintf("%v", x)
	}
}

func FormatFloat(f float64) string {
	if math.IsNaN(f) { return "nan" }
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") && !math.IsInf(f, 0) { s += ".0" }
	return s
}

// }}}
// {{{ Compare

// Compare orders two non-null cells: numbers before strings, numbers numerically, strings by
// code point.
func Compare(a, b Value) int {
	fa,aNum := number(a)
	fb,bNum := number(b)
	switch {
	case aNum && bNum:
		switch {
		case fa < fb: return -1
		case fa > fb: return 1
		default:      return 0
		}
	case aNum: return -1
	case bNum: return 1
	}
	return strings.Compare(Format(a), Format(b))
}

func number(v Value) (float64, bool) {
	switch x := v.(type) {
	case int:     return float64(x), true
	case int64:   return float64(x), true
	case float64: return x, true
	}
	return 0, false
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
