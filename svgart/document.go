// Package svgart generates art as SVG shapes, embedded in a simple HTML document.
package svgart

import(
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrDocumentClosed is returned by every Document method once Close has been called.
var ErrDocumentClosed = errors.New("document is closed")

const Tab = "    "

// Document writes an HTML page line by line, tracking the indent. It is append-only.
type Document struct {
	Title string

	w      io.WriteCloser
	tabs   int
	closed bool
	err    error // first write error; returned from every later call
}

// {{{ NewDocument, Create

// NewDocument writes the page preamble, up to and including the head.
func NewDocument(w io.WriteCloser, title string) (*Document, error) {
	d := &Document{Title:title, w:w}
	d.Append("<html>")
	d.Append("<head>")
	d.IncreaseIndent()
	d.Append(fmt.Sprintf("<title>%s</title>", title))
	d.DecreaseIndent()
	if err := d.Append("</head>"); err != nil {
		w.Close()
		return nil, err
	}
	return d, nil
}

func Create(path, title string) (*Document, error) {
	f,err := os.Create(path)
	if err != nil { return nil, err }
	return NewDocument(f, title)
}

// }}}
// {{{ d.Append, IncreaseIndent, DecreaseIndent

func (d *Document)ok() error {
	if d.closed { return ErrDocumentClosed }
	return d.err
}

func (d *Document)Append(line string) error {
	if err := d.ok(); err != nil { return err }
	_,d.err = io.WriteString(d.w, strings.Repeat(Tab, d.tabs) + line + "\n")
	return d.err
}

func (d *Document)IncreaseIndent() error {
	if err := d.ok(); err != nil { return err }
	d.tabs++
	return nil
}

// DecreaseIndent stops at zero.
func (d *Document)DecreaseIndent() error {
	if err := d.ok(); err != nil { return err }
	if d.tabs > 0 { d.tabs-- }
	return nil
}

func (d *Document)Indent() int { return d.tabs }

// }}}
// {{{ d.Comment, OpenBody, CloseBody, OpenCanvas, CloseCanvas

func (d *Document)Comment(text string) error { return d.Append(fmt.Sprintf("<!--%s-->", text)) }

func (d *Document)OpenBody() error {
	if err := d.Append("<body>"); err != nil { return err }
	return d.IncreaseIndent()
}

func (d *Document)CloseBody() error {
	if err := d.DecreaseIndent(); err != nil { return err }
	return d.Append("</body>")
}

// OpenCanvas starts the SVG drawing box that shapes get appended to.
func (d *Document)OpenCanvas(width, height int) error {
	if err := d.Comment("Define SVG drawing box"); err != nil { return err }
	if err := d.Append(fmt.Sprintf(`<svg width="%d" height="%d">`, width, height)); err != nil {
		return err
	}
	return d.IncreaseIndent()
}

func (d *Document)CloseCanvas() error {
	if err := d.DecreaseIndent(); err != nil { return err }
	return d.Append("</svg>")
}

// }}}
// {{{ d.Close

// Close finishes the page and closes the underlying writer. The writer is closed even if an
// earlier write failed.
func (d *Document)Close() error {
	if d.closed { return ErrDocumentClosed }

	err := d.Append("</html>")
	d.closed = true
	if cerr := d.w.Close(); err == nil { err = cerr }
	return err
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
