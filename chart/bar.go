package chart

import(
	"github.com/jung-kurt/gofpdf"
)

// The plot box; the bottom 30% of the page is left free for the rotated category labels.
var(
	BarBoxOffsetU = 30.0
	BarBoxOffsetV = 22.0
	BarBoxWidth   = 235.0
	BarBoxHeight  = 115.0

	BarLabelRotation = 60.0 // degrees, counter-clockwise
	BarLabelFontSize = 8.0
)

// {{{ DrawBarChart

// One bar per label, in order, with the category labels rotated underneath.
func DrawBarChart(pdf *gofpdf.Fpdf, spec Spec) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	max := 0.0
	for _,v := range spec.Values {
		if v > max { max = v }
	}
	top,step := NiceScale(max)

	bg := BaseGrid{
		Fpdf: pdf,
		OffsetU: BarBoxOffsetU,
		OffsetV: BarBoxOffsetV,
		W: BarBoxWidth,
		H: BarBoxHeight,
		MinX: 0,
		MaxX: float64(len(spec.Values)),
		MinY: 0,
		MaxY: top,
		YGridlineEvery: step,
		YTickFmt: "%.0f",
		LineColor: []int{0, 0, 0},
	}
	if step < 1 { bg.YTickFmt = "%.1f" }
	bg.DrawGridlines()

	for i,v := range spec.Values {
		rgb := paletteColor(0)
		pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
		x := float64(i)
		bg.Rect(x+0.1, 0, x+0.9, v, "F")

		// Tick, then the label hanging down-left from it
		u,v,_ := bg.UV(x+0.5, 0)
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetLineWidth(0.2)
		pdf.Line(u, v, u, v+1.5)

		pdf.SetFont("Arial", "", BarLabelFontSize)
		pdf.SetTextColor(0, 0, 0)
		label := tr(spec.Labels[i])
		w := pdf.GetStringWidth(label)
		pdf.TransformBegin()
		pdf.TransformRotate(BarLabelRotation, u, v+3)
		pdf.Text(u-w, v+3+1, label)
		pdf.TransformEnd()
	}

	drawAxisLabels(pdf, bg, tr(spec.XLabel), tr(spec.YLabel))
}

// }}}
// {{{ drawAxisLabels

func drawAxisLabels(pdf *gofpdf.Fpdf, bg BaseGrid, xlabel, ylabel string) {
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(0, 0, 0)

	if xlabel != "" {
		pdf.SetXY(bg.OffsetU, PageHeight-14)
		pdf.CellFormat(bg.W, 6, xlabel, "", 0, "C", false, 0, "")
	}

	if ylabel != "" {
		w := pdf.GetStringWidth(ylabel)
		u := bg.OffsetU - 20
		v := bg.OffsetV + bg.H/2 + w/2
		pdf.TransformBegin()
		pdf.TransformRotate(90, u, v)
		pdf.Text(u, v, ylabel)
		pdf.TransformEnd()
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
