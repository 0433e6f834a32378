package query

import(
	"fmt"

	"github.com/skypies/routeart/table"
)

// RoutePair is one physical route between two airports, and the difference in their
// altitudes. A route may have been recorded in either direction.
type RoutePair struct {
	From, To string
	Diff     float64
}

func (rp RoutePair)String() string {
	return fmt.Sprintf("%s-%s,%s", rp.From, rp.To, table.FormatFloat(rp.Diff))
}

type pairKey struct {
	a, b string
	diff float64
}

// key is the same for (A,B,d) and (B,A,d)
func (rp RoutePair)key() pairKey {
	if rp.From <= rp.To { return pairKey{rp.From, rp.To, rp.Diff} }
	return pairKey{rp.To, rp.From, rp.Diff}
}

// {{{ DedupPairs

// DedupPairs keeps the first occurrence of each route, in either direction, and drops any
// later ones. The relative order of the kept pairs is unchanged.
func DedupPairs(in []RoutePair) []RoutePair {
	seen := map[pairKey]bool{}
	out := []RoutePair{}
	for _,rp := range in {
		k := rp.key()
		if seen[k] { continue }
		seen[k] = true
		out = append(out, rp)
	}
	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
