package query

import(
	"math"

	db "github.com/skypies/routeart/routedb"
	"github.com/skypies/routeart/table"
)

func init() {
	Register("q1", Question1, 20, "Top 20 Airlines With The Greatest Number Of Routes To Canada")
	Register("q2", Question2, 30, "Top 30 Countries With The Least Appearances As A Destination Country")
	Register("q3", Question3, 10, "Top 10 Destination Airports")
	Register("q4", Question4, 15, "Top 15 Destination Cities")
	Register("q5", Question5, 10, "Top 10 Canadian Routes With The Greatest Difference In Altitude")
}

// Derived column names used by the altitude question
const(
	ColToAltitude   = "to_airport_altitude"
	ColToCode       = "to_airport_icao_unique_code"
	ColFromAltitude = "from_airport_altitude"
	ColFromCode     = "from_airport_icao_unique_code"
	ColDiff         = "diff"
)

// {{{ Question1

// The 20 airlines with the most routes into Canada.
func Question1(ds *db.Dataset) (Result, error) {
	airlines := from(ds.Airlines).drop(db.ColAirlineCountry)
	airports := from(ds.Airports).
		drop(db.ColAirportName, db.ColAirportCity, db.ColAirportCode, db.ColAirportAltitude).
		where(db.ColAirportCountry, KCanada)

	return from(ds.Routes).
		drop(db.ColRouteFromAirportID).
		rename(map[string]string{db.ColRouteAirlineID: db.ColAirlineID}).
		join(airlines, db.ColAirlineID, table.Inner).
		rename(map[string]string{db.ColRouteToAirportID: db.ColAirportID}).
		join(airports, db.ColAirportID, table.Inner).
		lstrip().
		groupCount(db.ColAirlineName, db.ColAirlineCode).
		sortBy(table.Desc(table.SizeColumn), table.Asc(db.ColAirlineName)).
		head(20).
		result()
}

// }}}
// {{{ Question2

// The 30 countries that appear least often as a route destination.
func Question2(ds *db.Dataset) (Result, error) {
	// Airlines play no part, but a malformed airlines table still fails the question
	if p := from(ds.Airlines).drop(db.ColAirlineCountry, db.ColAirlineName, db.ColAirlineCode); p.err != nil {
		return Result{}, p.err
	}
	airports := from(ds.Airports).
		drop(db.ColAirportName, db.ColAirportCity, db.ColAirportCode, db.ColAirportAltitude)

	return from(ds.Routes).
		drop(db.ColRouteFromAirportID).
		rename(map[string]string{db.ColRouteToAirportID: db.ColAirportID}).
		join(airports, db.ColAirportID, table.Inner).
		lstrip().
		groupCount(db.ColAirportCountry).
		sortBy(table.Asc(table.SizeColumn), table.Asc(db.ColAirportCountry)).
		head(30).
		result()
}

// }}}
// {{{ Question3

// The 10 most popular destination airports.
func Question3(ds *db.Dataset) (Result, error) {
	airlines := from(ds.Airlines).drop(db.ColAirlineCountry, db.ColAirlineName, db.ColAirlineCode)
	airports := from(ds.Airports).drop(db.ColAirportAltitude)

	return from(ds.Routes).
		drop(db.ColRouteFromAirportID).
		rename(map[string]string{db.ColRouteAirlineID: db.ColAirlineID}).
		join(airlines, db.ColAirlineID, table.Left).
		rename(map[string]string{db.ColRouteToAirportID: db.ColAirportID}).
		join(airports, db.ColAirportID, table.Left).
		lstrip().
		groupCount(db.ColAirportName, db.ColAirportCode, db.ColAirportCity, db.ColAirportCountry).
		sortBy(table.Desc(table.SizeColumn), table.Asc(db.ColAirportName)).
		head(10).
		result()
}

// }}}
// {{{ Question4

// The 15 most popular destination cities.
func Question4(ds *db.Dataset) (Result, error) {
	airports := from(ds.Airports).
		drop(db.ColAirportAltitude, db.ColAirportCode, db.ColAirportName).
		rename(map[string]string{db.ColAirportID: db.ColRouteToAirportID})

	return from(ds.Routes).
		drop(db.ColRouteFromAirportID).
		join(airports, db.ColRouteToAirportID, table.Inner).
		lstrip().
		groupCount(db.ColAirportCity, db.ColAirportCountry).
		sortBy(table.Desc(table.SizeColumn), table.Asc(db.ColAirportCity)).
		head(15).
		result()
}

// }}}
// {{{ Question5

// Canadian routes ranked by the altitude difference between their two airports. Every
// route appears once, whichever direction it was recorded in. All ranked pairs are returned;
// the reporter decides how many to show.
func Question5(ds *db.Dataset) (Result, error) {
	if p := from(ds.Airlines).drop(db.ColAirlineCountry, db.ColAirlineName, db.ColAirlineCode); p.err != nil {
		return Result{}, p.err
	}
	canadian := from(ds.Airports).
		drop(db.ColAirportName, db.ColAirportCity).
		where(db.ColAirportCountry, KCanada)

	toAirports := from(canadian.t).rename(map[string]string{db.ColAirportID: db.ColRouteToAirportID})
	fromAirports := from(canadian.t).rename(map[string]string{db.ColAirportID: db.ColRouteFromAirportID})
	if canadian.err != nil { return Result{}, canadian.err }

	p := from(ds.Routes).
		join(toAirports, db.ColRouteToAirportID, table.Inner).
		rename(map[string]string{db.ColAirportAltitude: ColToAltitude, db.ColAirportCode: ColToCode}).
		join(fromAirports, db.ColRouteFromAirportID, table.Inner).
		rename(map[string]string{db.ColAirportAltitude: ColFromAltitude, db.ColAirportCode: ColFromCode}).
		require(ColToAltitude, ColFromAltitude, ColToCode, ColFromCode).
		derive(ColDiff, altitudeDiff).
		lstrip().
		sortBy(table.Desc(ColDiff), table.Asc(ColToCode), table.Asc(ColFromCode))
	if p.err != nil { return Result{}, p.err }

	pairs := make([]RoutePair, 0, p.t.Len())
	for _,r := range p.t.Rows {
		pairs = append(pairs, RoutePair{
			From: table.Format(r[ColFromCode]),
			To:   table.Format(r[ColToCode]),
			Diff: r[ColDiff].(float64),
		})
	}

	return Result{Table: p.t, Pairs: DedupPairs(pairs)}, nil
}

func altitudeDiff(r table.Row) (table.Value, error) {
	toAlt,err := table.Float(r[ColToAltitude])
	if err != nil { return nil, err }
	fromAlt,err := table.Float(r[ColFromAltitude])
	if err != nil { return nil, err }
	return math.Abs(toAlt - fromAlt), nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
