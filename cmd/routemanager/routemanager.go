package main

// go run routemanager.go --AIRLINES=airlines.yaml --AIRPORTS=airports.yaml --ROUTES=routes.yaml \
//   --QUESTION=q1 --GRAPH_TYPE=bar

import(
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/skypies/routeart/bqexport"
	"github.com/skypies/routeart/chart"
	"github.com/skypies/routeart/query"
	"github.com/skypies/routeart/report"
	"github.com/skypies/routeart/routedb"
)

var ErrMissingArgument = errors.New("missing argument")

var(
	ctx = context.Background()
	fAirlines string
	fAirports string
	fRoutes string
	fQuestion string
	fGraphType string
	fOutDir string
	fVerbosity int
	fCredentials string
	fBQProject string
	fBQDataset string
	fBQTable string
)

func init() {
	flag.StringVar(&fAirlines, "AIRLINES", "", "airlines YAML file (or gs://bucket/object)")
	flag.StringVar(&fAirports, "AIRPORTS", "", "airports YAML file (or gs://bucket/object)")
	flag.StringVar(&fRoutes, "ROUTES", "", "routes YAML file (or gs://bucket/object)")
	flag.StringVar(&fQuestion, "QUESTION", "", "which question to answer: "+strings.Join(query.Names(), ","))
	flag.StringVar(&fGraphType, "GRAPH_TYPE", "", "chart type: bar or pie")
	flag.StringVar(&fOutDir, "out", ".", "directory to write the CSV and PDF into")
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.StringVar(&fCredentials, "creds", "", "credentials file for gs:// sources and bigquery")
	flag.StringVar(&fBQProject, "bqproject", "", "if set, also publish the rows to this bigquery project")
	flag.StringVar(&fBQDataset, "bqdataset", "", "bigquery dataset")
	flag.StringVar(&fBQTable, "bqtable", "", "bigquery table")
}

// {{{ checkArgs

func checkArgs() (chart.Kind, error) {
	for _,a := range []struct{ name, val string }{
		{"AIRLINES", fAirlines}, {"AIRPORTS", fAirports}, {"ROUTES", fRoutes},
		{"QUESTION", fQuestion}, {"GRAPH_TYPE", fGraphType},
	}{
		if a.val == "" { return chart.Bar, fmt.Errorf("%w: --%s", ErrMissingArgument, a.name) }
	}

	if _,err := query.Lookup(fQuestion); err != nil { return chart.Bar, err }

	if fBQProject != "" && (fBQDataset == "" || fBQTable == "") {
		return chart.Bar, fmt.Errorf("%w: -bqproject needs -bqdataset and -bqtable", ErrMissingArgument)
	}

	return chart.ParseKind(fGraphType)
}

// }}}

func main() {
	flag.Parse()

	kind,err := checkArgs()
	if err != nil { log.Fatal(err) }

	tStart := time.Now()
	ds,err := routedb.Load(ctx, routedb.Sources{
		Airlines: fAirlines,
		Airports: fAirports,
		Routes: fRoutes,
		CredentialsFile: fCredentials,
	})
	if err != nil { log.Fatal(err) }
	if fVerbosity > 0 { fmt.Printf("Loaded %s in %s\n", ds, time.Since(tStart)) }

	res,err := query.Run(fQuestion, ds)
	if err != nil { log.Fatal(err) }
	if fVerbosity > 1 { fmt.Print(res) }

	r,err := report.New(fQuestion, kind)
	if err != nil { log.Fatal(err) }
	if fVerbosity > 1 { r.LogLevel = report.DEBUG }

	if err := r.Build(res); err != nil { log.Fatal(err) }
	if err := os.MkdirAll(fOutDir, 0755); err != nil { log.Fatal(err) }
	if err := r.WriteTo(report.DirSink(fOutDir)); err != nil { log.Fatal(err) }

	if fVerbosity > 0 {
		fmt.Print(r.Log)
		fmt.Print(r.Summary())
	}

	if fBQProject != "" {
		dest := bqexport.Destination{
			Project: fBQProject,
			Dataset: fBQDataset,
			Table: fBQTable,
			CredentialsFile: fCredentials,
		}
		rows := bqexport.RowsForBigQuery(r, bqexport.NewRunID(), time.Now())
		if err := bqexport.Publish(ctx, dest, rows); err != nil {
			r.RemoveFrom(report.DirSink(fOutDir))
			log.Fatal(err)
		}
		if fVerbosity > 0 { fmt.Printf("Published %d rows to %s\n", len(rows), dest) }
	}
}
