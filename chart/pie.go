package chart

import(
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"
)

var(
	PieCenterU = PageWidth / 2
	PieCenterV = 115.0
	PieRadius  = 70.0

	PieLabelDistance = 1.2 // label position, as a multiple of the radius
	PiePctDistance   = 0.7 // percentage position, as a multiple of the radius
	PieStartAngle    = 0.0 // degrees; wedges start at three o'clock and run counter-clockwise
)

// {{{ WedgeAngles

// WedgeAngles returns the start & end angle (degrees) of each wedge, and each value's
// percentage share.
func WedgeAngles(values []float64) (starts, ends, pcts []float64, err error) {
	total := 0.0
	for _,v := range values {
		if v < 0 { return nil, nil, nil, fmt.Errorf("pie chart can't show negative value %v", v) }
		total += v
	}
	if total <= 0 {
		return nil, nil, nil, fmt.Errorf("%w: pie chart values sum to zero", ErrEmptyChart)
	}

	a := PieStartAngle
	for _,v := range values {
		sweep := 360.0 * v / total
		starts = append(starts, a)
		ends = append(ends, a+sweep)
		pcts = append(pcts, 100.0 * v / total)
		a += sweep
	}
	return starts, ends, pcts, nil
}

// }}}
// {{{ polar

// Angles are counter-clockwise from three o'clock; PDF space has y going down the page.
func polar(r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180.0
	return PieCenterU + r*math.Cos(rad), PieCenterV - r*math.Sin(rad)
}

// }}}
// {{{ DrawPieChart

func DrawPieChart(pdf *gofpdf.Fpdf, spec Spec) error {
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	starts,ends,pcts,err := WedgeAngles(spec.Values)
	if err != nil { return fmt.Errorf("'%s': %w", spec.Title, err) }

	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(0xff, 0xff, 0xff)
	for i := range starts {
		if ends[i] - starts[i] <= 0 { continue }

		pts := []gofpdf.PointType{{X: PieCenterU, Y: PieCenterV}}
		nSteps := int(math.Ceil((ends[i]-starts[i]) / 2.0))
		for s := 0; s <= nSteps; s++ {
			a := starts[i] + (ends[i]-starts[i]) * float64(s) / float64(nSteps)
			x,y := polar(PieRadius, a)
			pts = append(pts, gofpdf.PointType{X: x, Y: y})
		}

		rgb := paletteColor(i)
		pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
		pdf.Polygon(pts, "FD")
	}

	pdf.SetTextColor(0, 0, 0)
	for i := range starts {
		mid := (starts[i] + ends[i]) / 2

		pdf.SetFont("Arial", "", 8)
		label := tr(spec.Labels[i])
		w := pdf.GetStringWidth(label)
		x,y := polar(PieRadius*PieLabelDistance, mid)
		if math.Cos(mid*math.Pi/180.0) < 0 { x -= w } // labels on the left end at the wedge
		pdf.Text(x, y+1, label)

		pct := fmt.Sprintf("%.0f%%", pcts[i])
		w = pdf.GetStringWidth(pct)
		x,y = polar(PieRadius*PiePctDistance, mid)
		pdf.Text(x-w/2, y+1, pct)
	}

	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
