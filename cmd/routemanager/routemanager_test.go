package main

import(
	"errors"
	"testing"

	"github.com/skypies/routeart/chart"
	"github.com/skypies/routeart/query"
)

func setArgs(q, graph string) {
	fAirlines, fAirports, fRoutes = "a.yaml", "p.yaml", "r.yaml"
	fQuestion, fGraphType = q, graph
	fBQProject, fBQDataset, fBQTable = "", "", ""
}

func TestCheckArgs(t *testing.T) {
	setArgs("q3", "pie")
	if k,err := checkArgs(); err != nil || k != chart.Pie {
		t.Errorf("'q3 pie' - expected Pie, got %v (err %v)", k, err)
	}

	setArgs("", "bar")
	if _,err := checkArgs(); !errors.Is(err, ErrMissingArgument) {
		t.Errorf("'no question' - expected ErrMissingArgument, got %v", err)
	}

	setArgs("q1", "bar")
	fRoutes = ""
	if _,err := checkArgs(); !errors.Is(err, ErrMissingArgument) {
		t.Errorf("'no routes' - expected ErrMissingArgument, got %v", err)
	}

	setArgs("q6", "bar")
	if _,err := checkArgs(); !errors.Is(err, query.ErrUnknownQuestion) {
		t.Errorf("'q6' - expected ErrUnknownQuestion, got %v", err)
	}

	setArgs("q1", "line")
	if _,err := checkArgs(); !errors.Is(err, chart.ErrUnknownKind) {
		t.Errorf("'line' - expected ErrUnknownKind, got %v", err)
	}

	setArgs("q1", "bar")
	fBQProject = "proj"
	if _,err := checkArgs(); !errors.Is(err, ErrMissingArgument) {
		t.Errorf("'bqproject only' - expected ErrMissingArgument, got %v", err)
	}
}
