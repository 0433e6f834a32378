package table

import(
	"fmt"
	"sort"
	"strings"
)

type SortKey struct {
	Column string
	Desc   bool
}

func Asc(col string) SortKey { return SortKey{Column:col} }
func Desc(col string) SortKey { return SortKey{Column:col, Desc:true} }

func (sk SortKey)String() string {
	if sk.Desc { return "-" + sk.Column }
	return sk.Column
}

// {{{ t.SortBy

// SortBy is a stable sort over several keys; later keys only break ties in earlier ones.
// Nulls go last regardless of direction.
func (t Table)SortBy(keys ...SortKey) (Table, error) {
	for _,k := range keys {
		if err := t.check(k.Column); err != nil {
			return Table{}, fmt.Errorf("sort by %s: %w", sortKeysString(keys), err)
		}
	}

	out := New(t.Columns, t.Rows...)
	sort.SliceStable(out.Rows, func(i, j int) bool {
		return lessRow(out.Rows[i], out.Rows[j], keys)
	})
	return out, nil
}

func lessRow(a, b Row, keys []SortKey) bool {
	for _,k := range keys {
		va,vb := a[k.Column], b[k.Column]
		switch {
		case va == nil && vb == nil: continue
		case va == nil: return false
		case vb == nil: return true
		}
		c := Compare(va, vb)
		if c == 0 { continue }
		if k.Desc { return c > 0 }
		return c < 0
	}
	return false
}

func sortKeysString(keys []SortKey) string {
	s := []string{}
	for _,k := range keys { s = append(s, k.String()) }
	return "[" + strings.Join(s, ",") + "]"
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
