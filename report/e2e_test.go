package report

import(
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/skypies/routeart/chart"
	"github.com/skypies/routeart/query"
	db "github.com/skypies/routeart/routedb"
)

func loadTestdata(t *testing.T) *db.Dataset {
	ds,err := db.Load(context.Background(), db.Sources{
		Airlines: "../routedb/testdata/airlines.yaml",
		Airports: "../routedb/testdata/airports.yaml",
		Routes:   "../routedb/testdata/routes.yaml",
	})
	if err != nil { t.Fatal(err) }
	return ds
}

// From the YAML files all the way through to the written CSV and PDF.
func TestLoadQueryWrite(t *testing.T) {
	res,err := query.Run("q1", loadTestdata(t))
	if err != nil { t.Fatal(err) }

	sink := newMemSink()
	if _,err := Run(res, chart.Bar, sink); err != nil { t.Fatal(err) }

	expected := "subject,statistic\nAir A (AA),1\n"
	if got := string(sink.files["q1.csv"]); got != expected {
		t.Errorf("'q1.csv' - expected %q, got %q", expected, got)
	}
	if !strings.HasPrefix(string(sink.files["q1.pdf"]), "%PDF-") {
		t.Errorf("'q1.pdf' - expected a PDF")
	}
}

func TestRemoveFrom(t *testing.T) {
	res,err := query.Run("q1", loadTestdata(t))
	if err != nil { t.Fatal(err) }

	sink := newMemSink()
	r,err := Run(res, chart.Pie, sink)
	if err != nil { t.Fatal(err) }
	if len(sink.files) != 2 { t.Fatalf("expected 2 files, got %d", len(sink.files)) }

	// e.g. the bigquery publish failed after the files went out
	if err := r.RemoveFrom(sink); err != nil { t.Fatal(err) }
	if len(sink.files) != 0 {
		t.Errorf("expected no files left, got %d", len(sink.files))
	}

	if err := r.RemoveFrom(DirSink(t.TempDir())); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("'empty dir' - expected ErrNotExist, got %v", err)
	}
}
