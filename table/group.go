package table

import(
	"sort"
	"strings"
)

// SizeColumn is the name of the count column produced by GroupCount.
const SizeColumn = "size"

// {{{ t.GroupCount

// GroupCount groups rows by the key columns and counts each group. The result has the key
// columns plus SizeColumn (an int64), with groups ordered by their keys, ascending. Rows with
// a null in any key column don't belong to any group.
func (t Table)GroupCount(keys ...string) (Table, error) {
	if err := t.check(keys...); err != nil { return Table{}, err }

	type group struct {
		vals []Value
		n    int64
	}
	groups := map[string]*group{}
	order := []*group{}

	for _,r := range t.Rows {
		parts := []string{}
		vals := []Value{}
		isNull := false
		for _,k := range keys {
			s,ok := keyOf(r[k])
			if !ok { isNull = true; break }
			parts = append(parts, s)
			vals = append(vals, r[k])
		}
		if isNull { continue }

		gk := strings.Join(parts, "\x00")
		if g,exists := groups[gk]; exists {
			g.n++
		} else {
			g = &group{vals: vals, n: 1}
			groups[gk] = g
			order = append(order, g)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		for k := range keys {
			if c := Compare(order[i].vals[k], order[j].vals[k]); c != 0 {
				return c < 0
			}
		}
		return false
	})

	out := Table{Columns: append(append([]string{}, keys...), SizeColumn), Rows: []Row{}}
	for _,g := range order {
		nr := Row{SizeColumn: g.n}
		for i,k := range keys { nr[k] = g.vals[i] }
		out.Rows = append(out.Rows, nr)
	}
	return out, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
