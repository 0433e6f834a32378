// Package report turns the result of a question into its two output artifacts: a CSV of
// subject,statistic rows and a chart.
package report

import(
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/skypies/util/histogram"

	"github.com/skypies/routeart/chart"
	"github.com/skypies/routeart/query"
)

// ErrEmptyResult means there were no rows to report on.
var ErrEmptyResult = errors.New("empty result")

type ReportLogLevel int
const(
	DEBUG ReportLogLevel = iota
	INFO
)

type Report struct {
	Question     string
	query.Entry  // embedded
	Kind         chart.Kind
	LogLevel     ReportLogLevel

	// Output state; one entry per reported row
	Subjects   []string  // CSV subject column
	Statistics []string  // CSV statistic column
	Labels     []string  // chart category labels
	Values     []float64 // chart values

	I     map[string]int
	H     histogram.Histogram // q5 only: spread of altitude differences, in feet
	Stats histogram.Set       // internal performance counters, in micros
	Log   string
}

// {{{ New

func New(question string, kind chart.Kind) (*Report, error) {
	entry,err := query.Lookup(question)
	if err != nil { return nil, err }

	r := Report{
		Question: question,
		Entry: entry,
		Kind: kind,
		LogLevel: INFO,
		Subjects: []string{},
		Statistics: []string{},
		Labels: []string{},
		Values: []float64{},
		I: map[string]int{},
		Stats: histogram.NewSet(10000000),  // maxval, in micros; 10s == 10000000us
	}
	return &r, nil
}

// }}}
// {{{ r.Logger, Infof, Debugf

func (r *Report)Logger(level ReportLogLevel, s string) {
	if level < r.LogLevel { return }
	r.Log += s
}
func (r *Report)Infof(s string,args ...interface{}) { r.Logger(INFO, fmt.Sprintf(s,args...)) }
func (r *Report)Debugf(s string,args ...interface{}) { r.Logger(DEBUG, fmt.Sprintf(s,args...)) }

// }}}
// {{{ r.AddRow

func (r *Report)AddRow(subject, statistic, label string, value float64) {
	r.Subjects = append(r.Subjects, subject)
	r.Statistics = append(r.Statistics, statistic)
	r.Labels = append(r.Labels, label)
	r.Values = append(r.Values, value)
}

func (r *Report)Len() int { return len(r.Subjects) }

// }}}
// {{{ r.Build

// Build fills in the output rows from the result, using the question's row template.
func (r *Report)Build(res query.Result) error {
	tStart := time.Now()
	defer func() { r.Stats.RecordValue("build", time.Since(tStart).Nanoseconds()/1000) }()

	tmpl,exists := templates[r.Question]
	if !exists {
		return fmt.Errorf("%w '%s': no report template", query.ErrUnknownQuestion, r.Question)
	}

	r.Infof("**** %s: %s\n", r.Question, r.Title)
	r.I["[A] result rows"] = res.Len()

	if err := tmpl(r, res); err != nil { return err }

	r.I["[B] reported rows"] = r.Len()
	if r.Len() == 0 {
		return fmt.Errorf("%w: %s produced no rows", ErrEmptyResult, r.Question)
	}
	return nil
}

// }}}
// {{{ r.ChartSpec

func (r *Report)ChartSpec() chart.Spec {
	spec := chart.Spec{
		Title: r.Title,
		Labels: r.Labels,
		Values: r.Values,
	}
	if r.Kind == chart.Bar {
		spec.XLabel,spec.YLabel = axisLabels[r.Question][0], axisLabels[r.Question][1]
	}
	return spec
}

// }}}
// {{{ r.Summary

func (r *Report)Summary() string {
	all := map[string]string{}

	for k,v := range r.I { all[k] = fmt.Sprintf("%d", v) }

	if stats,valid := r.H.Stats(); valid {
		all["[Z] diff stats, N"] = fmt.Sprintf("%d", stats.N)
		all["[Z] diff stats, Mean"] = fmt.Sprintf("%.0f", stats.Mean)
		all["[Z] diff stats, Stddev"] = fmt.Sprintf("%.0f", stats.Stddev)
		all["[Z] diff stats, 50%ile"] = fmt.Sprintf("%v", stats.Percentile50)
		all["[Z] diff stats, 90%ile"] = fmt.Sprintf("%v", stats.Percentile90)
	}

	keys := []string{}
	for k,_ := range all { keys = append(keys, k) }
	sort.Strings(keys)

	str := fmt.Sprintf("---- %s (%s) ----\n", r.Question, r.Kind)
	for _,k := range keys {
		str += fmt.Sprintf("  %-28.28s: %s\n", k, all[k])
	}
	str += fmt.Sprintf("Stats (in micros):-\n%s", r.Stats)
	return str
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
