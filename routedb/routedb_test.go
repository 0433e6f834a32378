package routedb

// go test -v github.com/skypies/routeart/routedb

import(
	"context"
	"errors"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	ds,err := Load(context.Background(), Sources{
		Airlines: "testdata/airlines.yaml",
		Airports: "testdata/airports.yaml",
		Routes:   "testdata/routes.yaml",
	})
	if err != nil { t.Fatal(err) }

	if ds.Airlines.Len() != 2 || ds.Airports.Len() != 3 || ds.Routes.Len() != 1 {
		t.Fatalf("unexpected sizes: %s", ds)
	}

	expectedCols := []string{ColAirlineID, ColAirlineName, ColAirlineCode, ColAirlineCountry}
	for i,c := range expectedCols {
		if ds.Airlines.Columns[i] != c {
			t.Errorf("column %d - expected %q, got %q", i, c, ds.Airlines.Columns[i])
		}
	}

	if v := ds.Airports.Rows[0][ColAirportAltitude]; v != int64(569) {
		t.Errorf("altitude - expected int64(569), got %v (%T)", v, v)
	}
	if v := ds.Airlines.Rows[1][ColAirlineName]; v != " Beta Air" {
		t.Errorf("loader should not strip - got %q", v)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct{
		Name, Doc, Key string
	}{
		{"missing key",    "airports:\n  - airport_id: 1\n", KeyRoutes},
		{"not a list",     "routes: 12\n",                    KeyRoutes},
		{"not a record",   "routes:\n  - 12\n",               KeyRoutes},
		{"nested value",   "routes:\n  - a: [1,2]\n",         KeyRoutes},
		{"syntax",         "routes: [a, b\n",                 KeyRoutes},
		{"empty",          "",                                KeyRoutes},
		{"scalar doc",     "hello\n",                         KeyRoutes},
	}

	for _,test := range tests {
		_,err := Decode(strings.NewReader(test.Doc), test.Key)
		if !errors.Is(err, ErrLoad) {
			t.Errorf("'%s' - expected ErrLoad, got %v", test.Name, err)
		}
	}
}

func TestDecodeFillsMissingColumns(t *testing.T) {
	doc := "routes:\n  - a: 1\n  - b: x\n    a: 2.5\n"
	tbl,err := Decode(strings.NewReader(doc), KeyRoutes)
	if err != nil { t.Fatal(err) }
	if len(tbl.Columns) != 2 || tbl.Columns[0] != "a" || tbl.Columns[1] != "b" {
		t.Errorf("columns - got %v", tbl.Columns)
	}
	if v,exists := tbl.Rows[0]["b"]; !exists || v != nil {
		t.Errorf("expected null for missing column, got %v (exists=%v)", v, exists)
	}
	if tbl.Rows[1]["a"] != 2.5 {
		t.Errorf("expected float 2.5, got %v", tbl.Rows[1]["a"])
	}
}

func TestLoadFileErrors(t *testing.T) {
	ctx := context.Background()
	tests := []Sources{
		{Airlines:"testdata/nope.yaml", Airports:"testdata/airports.yaml", Routes:"testdata/routes.yaml"},
		{Airlines:"testdata/airlines.yaml", Airports:"testdata/airports.yaml", Routes:"testdata/wrongkey.yaml"},
		{Airlines:"testdata/wrongkey.yaml", Airports:"testdata/airports.yaml", Routes:"testdata/routes.yaml"},
		{Airlines:"testdata/airlines.yaml", Airports:"testdata/airports.yaml", Routes:"testdata/broken.yaml"},
		{Airlines:"testdata/airlines.yaml", Airports:"testdata/airports.yaml"},
		{Airlines:"gs://nobucket", Airports:"testdata/airports.yaml", Routes:"testdata/routes.yaml"},
	}
	for i,src := range tests {
		if _,err := Load(ctx, src); !errors.Is(err, ErrLoad) {
			t.Errorf("[%d] %+v - expected ErrLoad, got %v", i, src, err)
		}
	}
}

func TestSplitGCSPath(t *testing.T) {
	tests := []struct{
		Path, Bucket, Object string
		OK bool
	}{
		{"gs://b/o.yaml",      "b", "o.yaml",      true},
		{"gs://b/dir/o.yaml",  "b", "dir/o.yaml",  true},
		{"gs://b",             "",  "",            false},
		{"gs://b/",            "",  "",            false},
		{"/tmp/o.yaml",        "",  "",            false},
	}
	for _,test := range tests {
		b,o,ok := SplitGCSPath(test.Path)
		if b != test.Bucket || o != test.Object || ok != test.OK {
			t.Errorf("'%s' - expected (%q,%q,%v), got (%q,%q,%v)", test.Path,
				test.Bucket, test.Object, test.OK, b, o, ok)
		}
	}
}
