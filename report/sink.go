package report

import(
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/skypies/routeart/chart"
	"github.com/skypies/routeart/query"
)

// A Sink is somewhere the output artifacts get written.
type Sink interface {
	Create(name string) (io.WriteCloser, error)
	Remove(name string) error
}

// DirSink writes files into a local directory.
type DirSink string

func (d DirSink)path(name string) string { return filepath.Join(string(d), name) }
func (d DirSink)Create(name string) (io.WriteCloser, error) { return os.Create(d.path(name)) }
func (d DirSink)Remove(name string) error { return os.Remove(d.path(name)) }

func (r *Report)CSVFilename() string { return r.Question + ".csv" }
func (r *Report)PDFFilename() string { return r.Question + ".pdf" }

// {{{ r.WriteTo

// WriteTo renders both artifacts in memory, then writes them out. If either write fails, any
// file already written is removed again, so there's never partial output.
func (r *Report)WriteTo(sink Sink) error {
	tStart := time.Now()
	csvBytes,err := r.CSVBytes()
	if err != nil { return err }
	r.Stats.RecordValue("csv", time.Since(tStart).Nanoseconds()/1000)

	tStart = time.Now()
	var pdfBuf bytes.Buffer
	if err := chart.Render(r.Kind, r.ChartSpec(), &pdfBuf); err != nil { return err }
	r.Stats.RecordValue("chart", time.Since(tStart).Nanoseconds()/1000)

	written := []string{}
	for _,f := range []struct{ name string; data []byte }{
		{r.CSVFilename(), csvBytes},
		{r.PDFFilename(), pdfBuf.Bytes()},
	}{
		if err := writeFile(sink, f.name, f.data); err != nil {
			for _,w := range written { sink.Remove(w) }
			return err
		}
		written = append(written, f.name)
		r.Infof("wrote %s (%d bytes)\n", f.name, len(f.data))
	}

	return nil
}

// RemoveFrom deletes both artifacts, e.g. when a later step of the run fails.
func (r *Report)RemoveFrom(sink Sink) error {
	var first error
	for _,name := range []string{r.CSVFilename(), r.PDFFilename()} {
		if err := sink.Remove(name); err != nil && first == nil { first = err }
	}
	return first
}

func writeFile(sink Sink, name string, data []byte) error {
	wc,err := sink.Create(name)
	if err != nil { return fmt.Errorf("create %s: %v", name, err) }

	_,err = wc.Write(data)
	if cerr := wc.Close(); err == nil { err = cerr }
	if err != nil {
		sink.Remove(name)
		return fmt.Errorf("write %s: %v", name, err)
	}
	return nil
}

// }}}
// {{{ Run

// Run builds the report for a question's result and writes its CSV and chart to the sink.
func Run(res query.Result, kind chart.Kind, sink Sink) (*Report, error) {
	r,err := New(res.Question, kind)
	if err != nil { return nil, err }

	if err := r.Build(res); err != nil { return r, err }
	if err := r.WriteTo(sink); err != nil { return r, err }
	return r, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
