// Package bqexport publishes report rows into a BigQuery table, so that results from
// different runs (and different datasets) can be compared with SQL.
package bqexport

import(
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/skypies/routeart/report"
)

// ResultRow is one reported row, denormalized with the question it came from.
type ResultRow struct {
	RunID      string    `bigquery:"run_id"`    // same for every row published by one run
	Question   string    `bigquery:"question"`
	Title      string    `bigquery:"title"`
	Rank       int       `bigquery:"rank"`      // 1-based position in the report
	Subject    string    `bigquery:"subject"`
	Statistic  string    `bigquery:"statistic"` // as written in the CSV
	Value      float64   `bigquery:"value"`
	RunTime    time.Time `bigquery:"run_time"`
}

func (rr ResultRow)String() string {
	return fmt.Sprintf("%s[%2d] %s,%s", rr.Question, rr.Rank, rr.Subject, rr.Statistic)
}

// {{{ RowsForBigQuery

func NewRunID() string { return uuid.New().String() }

func RowsForBigQuery(r *report.Report, runID string, t time.Time) []ResultRow {
	rows := []ResultRow{}
	for i := range r.Subjects {
		rows = append(rows, ResultRow{
			RunID: runID,
			Question: r.Question,
			Title: r.Title,
			Rank: i+1,
			Subject: r.Subjects[i],
			Statistic: r.Statistics[i],
			Value: r.Values[i],
			RunTime: t,
		})
	}
	return rows
}

// }}}

// Destination names the table rows get appended to.
type Destination struct {
	Project         string
	Dataset         string
	Table           string
	CredentialsFile string // if empty, the default credentials are used
}

func (d Destination)String() string { return fmt.Sprintf("%s:%s.%s", d.Project, d.Dataset, d.Table) }

func (d Destination)check() error {
	if d.Project == "" || d.Dataset == "" || d.Table == "" {
		return fmt.Errorf("bigquery destination '%s' is incomplete", d)
	}
	return nil
}

// {{{ Publish

// Publish streams the rows into the destination table, which must already exist.
func Publish(ctx context.Context, d Destination, rows []ResultRow) error {
	if err := d.check(); err != nil { return err }
	if len(rows) == 0 { return nil }

	opts := []option.ClientOption{}
	if d.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(d.CredentialsFile))
	}

	client,err := bigquery.NewClient(ctx, d.Project, opts...)
	if err != nil {
		return fmt.Errorf("Creating bigquery client: %v", err)
	}
	defer client.Close()

	ins := client.Dataset(d.Dataset).Table(d.Table).Inserter()
	if err := ins.Put(ctx, rows); err != nil {
		if multi,ok := err.(bigquery.PutMultiError); ok {
			detailedErrStr := ""
			for i,rowErr := range multi {
				detailedErrStr += fmt.Sprintf(" [%2d] row %d: %v\n", i, rowErr.RowIndex, rowErr.Errors)
			}
			return fmt.Errorf("Insert into %s: %v\n--\n%s", d, err, detailedErrStr)
		}
		return fmt.Errorf("Insert into %s: %v", d, err)
	}

	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
