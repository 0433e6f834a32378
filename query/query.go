// Package query holds the five fixed questions asked of the route dataset. Each one is a
// pure function of the dataset, composed from the relational operations in package table.
package query

import(
	"fmt"

	"github.com/skypies/routeart/table"
)

const KCanada = "Canada"

// Result is the outcome of one question. Grouping questions fill in Table; the altitude
// question fills in Pairs, in rank order.
type Result struct {
	Question string
	Table    table.Table
	Pairs  []RoutePair
}

func (r Result)Len() int {
	if r.Pairs != nil { return len(r.Pairs) }
	return r.Table.Len()
}

func (r Result)String() string {
	if r.Pairs != nil {
		str := fmt.Sprintf("--- %s (%d route pairs) ---\n", r.Question, len(r.Pairs))
		for i,p := range r.Pairs {
			str += fmt.Sprintf("[%2d] %s\n", i, p)
		}
		return str
	}
	return fmt.Sprintf("--- %s ---\n%s", r.Question, r.Table)
}

// {{{ pipeline

// pipeline threads a table through a sequence of operations, remembering the first error;
// once something has failed, the rest are no-ops.
type pipeline struct {
	t   table.Table
	err error
}

func from(t table.Table) *pipeline { return &pipeline{t: t} }

func (p *pipeline)do(f func(table.Table) (table.Table, error)) *pipeline {
	if p.err == nil { p.t,p.err = f(p.t) }
	return p
}

func (p *pipeline)drop(cols ...string) *pipeline {
	return p.do(func(t table.Table) (table.Table, error) { return t.Drop(cols...) })
}
func (p *pipeline)where(col string, v table.Value) *pipeline {
	return p.do(func(t table.Table) (table.Table, error) { return t.Where(col, v) })
}
func (p *pipeline)rename(m map[string]string) *pipeline {
	return p.do(func(t table.Table) (table.Table, error) { return t.Rename(m), nil })
}
func (p *pipeline)join(right *pipeline, on string, how table.JoinKind) *pipeline {
	if p.err == nil && right.err != nil { p.err = right.err }
	return p.do(func(t table.Table) (table.Table, error) { return t.Join(right.t, on, how) })
}
func (p *pipeline)lstrip() *pipeline {
	return p.do(func(t table.Table) (table.Table, error) { return t.LStrip(), nil })
}
func (p *pipeline)groupCount(keys ...string) *pipeline {
	return p.do(func(t table.Table) (table.Table, error) { return t.GroupCount(keys...) })
}
func (p *pipeline)sortBy(keys ...table.SortKey) *pipeline {
	return p.do(func(t table.Table) (table.Table, error) { return t.SortBy(keys...) })
}
func (p *pipeline)head(n int) *pipeline {
	return p.do(func(t table.Table) (table.Table, error) { return t.Head(n), nil })
}
func (p *pipeline)require(cols ...string) *pipeline {
	return p.do(func(t table.Table) (table.Table, error) { return t, t.Require(cols...) })
}
func (p *pipeline)derive(col string, f func(table.Row) (table.Value, error)) *pipeline {
	return p.do(func(t table.Table) (table.Table, error) { return t.Derive(col, f) })
}

func (p *pipeline)result() (Result, error) {
	if p.err != nil { return Result{}, p.err }
	return Result{Table: p.t}, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
