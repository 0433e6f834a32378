package chart

import (
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// Describes a grid we're going to plot over, and the location of its top-left corner in PDF space
type BaseGrid struct {
	*gofpdf.Fpdf        // Embed the thing we're writing to

	// Describe the portion of PDF page space the grid will be drawn over (labels go outside of this)
	OffsetU     float64 // where the top-left corner should be, in PDF coords
	OffsetV     float64
	W,H         float64 // width and height of the grid, in PDF units (mm)

	// Control how (x,y) vals are mapped into (u,v) vals. The origin is bottom-left.
	MinX,MinY,MaxX,MaxY float64

	// How to draw gridlines
	YGridlineEvery float64 // From MinY to MaxY
	YTickFmt       string  // Will be passed a float64 via fmt.Sprintf; blank==none

	// Other formatting
	LineColor []int // rgb, each [0,255] - axis labels
}

// {{{ bg.U, V, UV

// the bools are whether the coords are out-of-bounds for the grid.
func (bg BaseGrid)U(x float64) (float64, bool) {
	// Scale the X value to [0.0, 1.0], then map into PDF coords
	xRatio := (x - bg.MinX) / (bg.MaxX - bg.MinX)
	u := bg.OffsetU + (xRatio * bg.W)
	return u, xRatio<0 || xRatio>1
}

// In PDF, the Y scale goes down the page
func (bg BaseGrid)V(y float64) (float64, bool) {
	yRatio := (y - bg.MinY) / (bg.MaxY - bg.MinY)
	v := bg.OffsetV + (bg.H - (yRatio * bg.H))
	return v, yRatio<0 || yRatio>1
}

func (bg BaseGrid)UV(x,y float64) (float64, float64, bool) {
	u,oobU := bg.U(x)
	v,oobV := bg.V(y)
	return u, v, (oobU || oobV)
}

// }}}
// {{{ bg.MaybeSet{Draw|Text}Color

func (bg BaseGrid)MaybeSetDrawColor() {
	if len(bg.LineColor) == 3 {
		bg.SetDrawColor(bg.LineColor[0], bg.LineColor[1], bg.LineColor[2])
	}
}

func (bg BaseGrid)MaybeSetTextColor() {
	if len(bg.LineColor) == 3 {
		bg.SetTextColor(bg.LineColor[0], bg.LineColor[1], bg.LineColor[2])
	}
}

// }}}
// {{{ bg.Line, Rect

// We submit coords in gridspace (e.g. x,y), and the grid transforms them into PDFspace.
func (bg BaseGrid)Line(x1,y1,x2,y2 float64) {
	u1,v1,_ := bg.UV(x1,y1)
	u2,v2,_ := bg.UV(x2,y2)
	bg.Fpdf.Line(u1,v1,u2,v2)
}

// Rect fills the box between (x1,y1) and (x2,y2), in gridspace.
func (bg BaseGrid)Rect(x1,y1,x2,y2 float64, style string) {
	u1,v1,_ := bg.UV(x1,y1)
	u2,v2,_ := bg.UV(x2,y2)
	bg.Fpdf.Rect(math.Min(u1,u2), math.Min(v1,v2), math.Abs(u2-u1), math.Abs(v2-v1), style)
}

// }}}

// {{{ bg.DrawGridlines

func (bg BaseGrid)DrawGridlines() {
	bg.SetFont("Arial", "", 8)

	bg.SetLineWidth(0.1)
	bg.SetDrawColor(0xe0, 0xe0, 0xe0)
	if bg.YGridlineEvery > 0 {
		for y := bg.MinY; y <= bg.MaxY + bg.YGridlineEvery/1000; y += bg.YGridlineEvery {
			bg.Line(bg.MinX, y, bg.MaxX, y)

			if bg.YTickFmt != "" {
				u,v,_ := bg.UV(bg.MinX, y)
				bg.MaybeSetTextColor()
				bg.SetXY(u-19, v-2)
				bg.CellFormat(18, 4, fmt.Sprintf(bg.YTickFmt, y), "", 0, "R", false, 0, "")
			}
		}
	}

	// Axes
	bg.SetLineWidth(0.3)
	bg.MaybeSetDrawColor()
	bg.Line(bg.MinX, bg.MinY, bg.MaxX, bg.MinY)
	bg.Line(bg.MinX, bg.MinY, bg.MinX, bg.MaxY)
}

// }}}
// {{{ NiceScale

// NiceScale picks a y-axis maximum and gridline spacing (1, 2 or 5 times a power of ten)
// that comfortably covers max.
func NiceScale(max float64) (top, step float64) {
	if max <= 0 { return 1, 0.2 }
	raw := max / 5
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch r := raw/mag; {
	case r <= 1: step = mag
	case r <= 2: step = 2*mag
	case r <= 5: step = 5*mag
	default:     step = 10*mag
	}
	top = math.Ceil(max/step) * step
	return top, step
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
