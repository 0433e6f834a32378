// Package table is a small in-memory relational table: rows of named scalar cells, and the
// handful of operations (drop, filter, rename, join, group, sort) the route queries are
// built out of. Operations never modify their receiver; they all hand back a new Table.
package table

import(
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrMissingColumn is returned when an operation references a column the table doesn't have.
var ErrMissingColumn = errors.New("missing column")

// A Value is a single cell: string, int64, float64, or nil (a null from a left join).
type Value interface{}

type Row map[string]Value

type Table struct {
	Columns []string
	Rows    []Row
}

// {{{ New

func New(cols []string, rows ...Row) Table {
	t := Table{Columns: append([]string{}, cols...), Rows: []Row{}}
	for _,r := range rows {
		t.Rows = append(t.Rows, r.clone())
	}
	return t
}

// }}}
// {{{ t.Len, Has, Column, String

func (t Table)Len() int { return len(t.Rows) }

func (t Table)Has(col string) bool {
	for _,c := range t.Columns {
		if c == col { return true }
	}
	return false
}

// Column returns the values of a single column, in row order.
func (t Table)Column(col string) ([]Value, error) {
	if err := t.check(col); err != nil { return nil, err }
	out := make([]Value, len(t.Rows))
	for i,r := range t.Rows {
		out[i] = r[col]
	}
	return out, nil
}

func (t Table)String() string {
	str := fmt.Sprintf("--- table (%d rows) ---\n", len(t.Rows))
	str += strings.Join(t.Columns, " | ") + "\n"
	for _,r := range t.Rows {
		vals := []string{}
		for _,c := range t.Columns {
			vals = append(vals, Format(r[c]))
		}
		str += strings.Join(vals, " | ") + "\n"
	}
	return str
}

// Require fails with ErrMissingColumn unless every named column is present.
func (t Table)Require(cols ...string) error { return t.check(cols...) }

// }}}
// {{{ t.check, r.clone

func (t Table)check(cols ...string) error {
	for _,c := range cols {
		if !t.Has(c) {
			return fmt.Errorf("%w '%s' (have %v)", ErrMissingColumn, c, t.Columns)
		}
	}
	return nil
}

func (r Row)clone() Row {
	out := make(Row, len(r))
	for k,v := range r { out[k] = v }
	return out
}

// }}}

// {{{ t.Drop

// Drop removes columns. Dropping a column that isn't there is an error.
func (t Table)Drop(cols ...string) (Table, error) {
	if err := t.check(cols...); err != nil { return Table{}, err }

	gone := map[string]bool{}
	for _,c := range cols { gone[c] = true }

	out := Table{Columns: []string{}, Rows: make([]Row, 0, len(t.Rows))}
	for _,c := range t.Columns {
		if !gone[c] { out.Columns = append(out.Columns, c) }
	}
	for _,r := range t.Rows {
		nr := make(Row, len(out.Columns))
		for _,c := range out.Columns { nr[c] = r[c] }
		out.Rows = append(out.Rows, nr)
	}
	return out, nil
}

// }}}
// {{{ t.Filter, Where

func (t Table)Filter(keep func(Row) bool) Table {
	out := Table{Columns: append([]string{}, t.Columns...), Rows: []Row{}}
	for _,r := range t.Rows {
		if keep(r) { out.Rows = append(out.Rows, r.clone()) }
	}
	return out
}

// Where keeps the rows whose column col equals v.
func (t Table)Where(col string, v Value) (Table, error) {
	if err := t.check(col); err != nil { return Table{}, err }
	want,ok := keyOf(v)
	return t.Filter(func(r Row) bool {
		got,gotOK := keyOf(r[col])
		return ok && gotOK && got == want
	}), nil
}

// }}}
// {{{ t.Rename

// Rename renames columns per the old->new map. Names not present are ignored.
func (t Table)Rename(m map[string]string) Table {
	newName := func(c string) string {
		if n,exists := m[c]; exists { return n }
		return c
	}

	out := Table{Columns: make([]string, len(t.Columns)), Rows: make([]Row, 0, len(t.Rows))}
	for i,c := range t.Columns {
		out.Columns[i] = newName(c)
	}
	for _,r := range t.Rows {
		nr := make(Row, len(r))
		for k,v := range r { nr[newName(k)] = v }
		out.Rows = append(out.Rows, nr)
	}
	return out
}

// }}}
// {{{ t.Derive

// Derive adds (or replaces) a column whose value is computed from each row.
func (t Table)Derive(col string, f func(Row) (Value, error)) (Table, error) {
	out := Table{Columns: append([]string{}, t.Columns...), Rows: make([]Row, 0, len(t.Rows))}
	if !t.Has(col) {
		out.Columns = append(out.Columns, col)
	}
	for i,r := range t.Rows {
		v,err := f(r)
		if err != nil { return Table{}, fmt.Errorf("row %d, column '%s': %w", i, col, err) }
		nr := r.clone()
		nr[col] = v
		out.Rows = append(out.Rows, nr)
	}
	return out, nil
}

// }}}
// {{{ t.LStrip

// LStrip strips leading whitespace from every string cell.
func (t Table)LStrip() Table {
	out := Table{Columns: append([]string{}, t.Columns...), Rows: make([]Row, 0, len(t.Rows))}
	for _,r := range t.Rows {
		nr := make(Row, len(r))
		for k,v := range r {
			if s,isString := v.(string); isString {
				v = strings.TrimLeftFunc(s, unicode.IsSpace)
			}
			nr[k] = v
		}
		out.Rows = append(out.Rows, nr)
	}
	return out
}

// }}}
// {{{ t.Head

// Head is the top-N cut: the first n rows (or all of them, if there are fewer).
func (t Table)Head(n int) Table {
	if n < 0 { n = 0 }
	if n > len(t.Rows) { n = len(t.Rows) }
	return New(t.Columns, t.Rows[:n]...)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
