package table

type JoinKind int
const(
	Inner JoinKind = iota
	Left
)

func (k JoinKind)String() string {
	switch k {
	case Inner: return "inner"
	case Left:  return "left"
	default:    return "?"
	}
}

// {{{ t.Join

// Join matches rows of t and right on equal values of column on. The output keeps t's row
// order; a left row matching several right rows yields one output row per match, in right's
// order. An inner join drops unmatched left rows, a left join keeps them with right's other
// columns null. Non-key columns present on both sides get _x (left) and _y (right) suffixes.
func (t Table)Join(right Table, on string, how JoinKind) (Table, error) {
	if err := t.check(on); err != nil { return Table{}, err }
	if err := right.check(on); err != nil { return Table{}, err }

	// Work out the output column names, including clash suffixes
	leftName := map[string]string{}
	rightName := map[string]string{}
	out := Table{Columns: []string{}, Rows: []Row{}}
	for _,c := range t.Columns {
		leftName[c] = c
		if c != on && right.Has(c) { leftName[c] = c + "_x" }
		out.Columns = append(out.Columns, leftName[c])
	}
	for _,c := range right.Columns {
		if c == on { continue }
		rightName[c] = c
		if t.Has(c) { rightName[c] = c + "_y" }
		out.Columns = append(out.Columns, rightName[c])
	}

	index := map[string][]Row{}
	for _,r := range right.Rows {
		if k,ok := keyOf(r[on]); ok {
			index[k] = append(index[k], r)
		}
	}

	for _,lr := range t.Rows {
		var matches []Row
		if k,ok := keyOf(lr[on]); ok {
			matches = index[k]
		}

		if len(matches) == 0 {
			if how == Left {
				nr := Row{}
				for c,n := range leftName { nr[n] = lr[c] }
				for _,n := range rightName { nr[n] = nil }
				out.Rows = append(out.Rows, nr)
			}
			continue
		}

		for _,rr := range matches {
			nr := Row{}
			for c,n := range leftName { nr[n] = lr[c] }
			for c,n := range rightName { nr[n] = rr[c] }
			out.Rows = append(out.Rows, nr)
		}
	}

	return out, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
