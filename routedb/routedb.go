// Package routedb loads the airline, airport and route datasets into tables.
package routedb

import(
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/skypies/routeart/table"
)

// ErrLoad wraps every failure to open or make sense of a source.
var ErrLoad = errors.New("load error")

// {{{ notes

/* Each source is a YAML document with a single top-level key, mapping to a list of flat
records, e.g.

airlines:
  - airline_id: 1
    airline_name: Air A
    airline_icao_unique_code: AA
    airline_country: X

The column names the queries care about are below. Note the route origin column really is
spelled 'aiport'.

 */

// }}}

const(
	KeyAirlines = "airlines"
	KeyAirports = "airports"
	KeyRoutes   = "routes"

	ColAirlineID      = "airline_id"
	ColAirlineName    = "airline_name"
	ColAirlineCode    = "airline_icao_unique_code"
	ColAirlineCountry = "airline_country"

	ColAirportID       = "airport_id"
	ColAirportName     = "airport_name"
	ColAirportCity     = "airport_city"
	ColAirportCountry  = "airport_country"
	ColAirportCode     = "airport_icao_unique_code"
	ColAirportAltitude = "airport_altitude"

	ColRouteAirlineID     = "route_airline_id"
	ColRouteFromAirportID = "route_from_aiport_id"
	ColRouteToAirportID   = "route_to_airport_id"
)

// Sources names where to find each dataset: a local path, or gs://bucket/object.
type Sources struct {
	Airlines string
	Airports string
	Routes   string

	CredentialsFile string // Only used for gs:// sources; blank means default credentials
}

type Dataset struct {
	Airlines table.Table
	Airports table.Table
	Routes   table.Table
}

func (ds Dataset)String() string {
	return fmt.Sprintf("dataset{airlines:%d, airports:%d, routes:%d}",
		ds.Airlines.Len(), ds.Airports.Len(), ds.Routes.Len())
}

// {{{ Load

func Load(ctx context.Context, src Sources) (*Dataset, error) {
	o := newOpener(src.CredentialsFile)
	defer o.Close()

	ds := Dataset{}
	for _,s := range []struct{
		path, key string
		dst *table.Table
	}{
		{src.Airlines, KeyAirlines, &ds.Airlines},
		{src.Airports, KeyAirports, &ds.Airports},
		{src.Routes,   KeyRoutes,   &ds.Routes},
	}{
		t,err := loadOne(ctx, o, s.path, s.key)
		if err != nil { return nil, err }
		*s.dst = t
	}

	return &ds, nil
}

func loadOne(ctx context.Context, o *opener, path, key string) (table.Table, error) {
	if path == "" {
		return table.Table{}, fmt.Errorf("%w: no source given for '%s'", ErrLoad, key)
	}
	rdr,err := o.Open(ctx, path)
	if err != nil {
		return table.Table{}, fmt.Errorf("%w: open %s: %v", ErrLoad, path, err)
	}
	defer rdr.Close()

	t,err := Decode(rdr, key)
	if err != nil {
		return table.Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// }}}
// {{{ Decode

// Decode reads one YAML document and turns the list under key into a table. Columns appear
// in the order they are first seen.
func Decode(r io.Reader, key string) (table.Table, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return table.Table{}, fmt.Errorf("%w: yaml: %v", ErrLoad, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 { root = root.Content[0] }
	if root.Kind != yaml.MappingNode {
		return table.Table{}, fmt.Errorf("%w: top level is not a mapping", ErrLoad)
	}

	var list *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == key {
			list = deref(root.Content[i+1])
			break
		}
	}
	if list == nil {
		return table.Table{}, fmt.Errorf("%w: top-level key '%s' not found", ErrLoad, key)
	}
	if list.Kind != yaml.SequenceNode {
		return table.Table{}, fmt.Errorf("%w: '%s' is not a list", ErrLoad, key)
	}

	t := table.Table{Columns: []string{}, Rows: []table.Row{}}
	seen := map[string]bool{}
	for n,item := range list.Content {
		item = deref(item)
		if item.Kind != yaml.MappingNode {
			return table.Table{}, fmt.Errorf("%w: %s[%d] is not a record", ErrLoad, key, n)
		}
		row := table.Row{}
		for i := 0; i+1 < len(item.Content); i += 2 {
			col := item.Content[i].Value
			v,err := scalar(deref(item.Content[i+1]))
			if err != nil {
				return table.Table{}, fmt.Errorf("%w: %s[%d].%s: %v", ErrLoad, key, n, col, err)
			}
			row[col] = v
			if !seen[col] {
				seen[col] = true
				t.Columns = append(t.Columns, col)
			}
		}
		t.Rows = append(t.Rows, row)
	}

	// Records missing a column get a null, so every row carries the full set
	for _,row := range t.Rows {
		for _,c := range t.Columns {
			if _,exists := row[c]; !exists { row[c] = nil }
		}
	}

	return t, nil
}

// }}}
// {{{ scalar, deref

func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode { n = n.Alias }
	return n
}

func scalar(n *yaml.Node) (table.Value, error) {
	if n == nil || n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("not a scalar")
	}
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			// Too big for an int64; keep it as a float
			f,ferr := strconv.ParseFloat(n.Value, 64)
			if ferr != nil { return nil, err }
			return f, nil
		}
		return i, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil { return nil, err }
		return f, nil
	default:
		return n.Value, nil
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
