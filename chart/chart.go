// Package chart renders simple bar and pie charts as PDFs.
package chart

import(
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// https://godoc.org/github.com/jung-kurt/gofpdf

var(
	ErrUnknownKind = errors.New("unknown chart kind")
	ErrEmptyChart  = errors.New("nothing to chart")
)

type Kind int
const(
	Bar Kind = iota
	Pie
)

func (k Kind)String() string {
	switch k {
	case Bar: return "bar"
	case Pie: return "pie"
	default:  return ""
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bar": return Bar, nil
	case "pie": return Pie, nil
	default:    return Bar, fmt.Errorf("%w %q (want bar or pie)", ErrUnknownKind, s)
	}
}

// Spec is everything needed to draw one chart. The axis labels are only used by bar charts.
type Spec struct {
	Title          string
	XLabel, YLabel string
	Labels       []string
	Values       []float64
}

func (s Spec)check() error {
	if len(s.Values) == 0 {
		return fmt.Errorf("%w: '%s' has no values", ErrEmptyChart, s.Title)
	}
	if len(s.Labels) != len(s.Values) {
		return fmt.Errorf("'%s': %d labels but %d values", s.Title, len(s.Labels), len(s.Values))
	}
	return nil
}

// {{{ var()

var(
	PageWidth  = 279.4 // Letter, landscape, in mm
	PageHeight = 215.9

	// Same 12-step gradient as the map colour scheme
	Palette = [][]int{
		{0x00, 0xBF, 0xA9}, // 00BFA9
		{0x00, 0xC2, 0x66}, // 00C266
		{0x00, 0xC5, 0x21}, // 00C521
		{0x25, 0xC9, 0x00}, // 25C900
		{0x6F, 0xCC, 0x00}, // 6FCC00
		{0xBB, 0xD0, 0x00}, // BBD000
		{0xD3, 0x9D, 0x00}, // D39D00
		{0xD7, 0x53, 0x00}, // D75300
		{0xDA, 0x06, 0x00}, // DA0600
		{0xDE, 0x00, 0x48}, // DE0048
		{0xE1, 0x00, 0x99}, // E10099
		{0xDB, 0x00, 0xE5}, // DB00E5
	}
)

func paletteColor(i int) []int { return Palette[i % len(Palette)] }

// }}}

// {{{ NewChartPdf

func NewChartPdf() *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 10)
	return pdf
}

// }}}
// {{{ DrawTitle

func DrawTitle(pdf *gofpdf.Fpdf, title string) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(10, 8)
	pdf.CellFormat(PageWidth-20, 10, tr(title), "", 0, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
}

// }}}

// {{{ Render

// Render draws the chart and writes the PDF to w. Nothing is written if drawing fails.
func Render(kind Kind, spec Spec, w io.Writer) error {
	if err := spec.check(); err != nil { return err }

	pdf := NewChartPdf()
	DrawTitle(pdf, spec.Title)

	switch kind {
	case Bar:
		DrawBarChart(pdf, spec)
	case Pie:
		if err := DrawPieChart(pdf, spec); err != nil { return err }
	default:
		return fmt.Errorf("%w %d", ErrUnknownKind, kind)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("chart '%s': %v", spec.Title, err)
	}
	return pdf.Output(w)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
