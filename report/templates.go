package report

import(
	"fmt"

	"github.com/skypies/util/histogram"

	db "github.com/skypies/routeart/routedb"
	"github.com/skypies/routeart/query"
	"github.com/skypies/routeart/table"
)

// How many route pairs the altitude question reports.
const KAltitudeRoutes = 10

// A template turns a query result into report rows.
type template func(*Report, query.Result) error

var templates = map[string]template{
	"q1": tableTemplate(func(row table.Row) (string, string) {
		name := table.Format(row[db.ColAirlineName])
		return fmt.Sprintf("%s (%s)", name, table.Format(row[db.ColAirlineCode])), name
	}),
	"q2": tableTemplate(func(row table.Row) (string, string) {
		country := table.Format(row[db.ColAirportCountry])
		return country, country
	}),
	"q3": tableTemplate(func(row table.Row) (string, string) {
		name := fmt.Sprintf("%s (%s)", table.Format(row[db.ColAirportName]), table.Format(row[db.ColAirportCode]))
		return fmt.Sprintf("%s, %s, %s", name, table.Format(row[db.ColAirportCity]),
			table.Format(row[db.ColAirportCountry])), name
	}),
	"q4": tableTemplate(func(row table.Row) (string, string) {
		city := fmt.Sprintf("%s, %s", table.Format(row[db.ColAirportCity]), table.Format(row[db.ColAirportCountry]))
		return city, city
	}),
	"q5": altitudeTemplate,
}

// Bar chart axis labels, {x, y}
var axisLabels = map[string][2]string{
	"q1": {"Airlines", "Frequency"},
	"q2": {"Countries", "Frequency"},
	"q3": {"Airports", "Frequency"},
	"q4": {"Cities", "Frequency"},
	"q5": {"Routes", "Difference In Altitude"},
}

// {{{ tableTemplate

// For the grouping questions: subject and chart label come from the group columns, and the
// statistic is the group size.
func tableTemplate(subject func(table.Row) (string, string)) template {
	return func(r *Report, res query.Result) error {
		if err := res.Table.Require(table.SizeColumn); err != nil { return err }
		for _,row := range res.Table.Rows {
			size,err := table.Float(row[table.SizeColumn])
			if err != nil { return fmt.Errorf("%s: %v", table.SizeColumn, err) }
			s,label := subject(row)
			r.AddRow(s, table.Format(row[table.SizeColumn]), label, size)
		}
		return nil
	}
}

// }}}
// {{{ altitudeTemplate

// The top KAltitudeRoutes route pairs. If there are fewer, all of them are reported.
func altitudeTemplate(r *Report, res query.Result) error {
	r.H = histogram.Histogram{ValMin:0, ValMax:10000, NumBuckets:20}
	for _,p := range res.Pairs {
		r.H.Add(histogram.ScalarVal(int(p.Diff)))
	}

	n := len(res.Pairs)
	if n > KAltitudeRoutes {
		n = KAltitudeRoutes
	} else if n < KAltitudeRoutes {
		r.Infof("only %d unique routes, fewer than %d\n", n, KAltitudeRoutes)
	}

	for _,p := range res.Pairs[:n] {
		route := fmt.Sprintf("%s-%s", p.From, p.To)
		r.AddRow(route, table.FormatFloat(p.Diff), route, p.Diff)
		r.Debugf("  %s\n", p)
	}
	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
