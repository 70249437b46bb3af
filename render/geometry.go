package render

import "github.com/princesinghrajput/eld-logsheet/logsheet"

// Fixed sheet margins and sizing rules, in px.
const (
	PaddingTop   = 40.0
	PaddingRight = 30.0
	PaddingLeft  = 100.0

	minGridHeight   = 280.0
	maxGridHeight   = 420.0
	gridHeightScale = 0.55

	remarksFixedHeight = 200.0
	remarksRulerGap    = 40.0
	remarkRowHeight    = 15.0
	remarkFirstRow     = 25.0
)

// Geometry is the resolved pixel layout for one day's sheet. It is a pure
// function of (day, container width): recomputed in full on every change,
// never patched.
type Geometry struct {
	Width  float64
	Height float64

	GridLeft   float64
	GridTop    float64
	GridWidth  float64
	GridHeight float64

	// MinuteWidth is the horizontal scale: px per minute of day.
	MinuteWidth float64
	// RowGap is the vertical spacing between lanes. Four lanes sit ON the
	// three gap boundaries, not centered in bands.
	RowGap float64

	// RemarksTop is the y of the remarks ledger ruler.
	RemarksTop  float64
	RemarkCount int
}

// LayoutDay computes the sheet geometry for a day at the given container
// width. The grid block is 0.55x the width clamped to [280, 420]; the remarks
// block below grows linearly with the number of annotated events so ledger
// rows never overlap.
func LayoutDay(day logsheet.Day, width float64) Geometry {
	remarkCount := day.RemarkCount()
	gridHeight := clamp(width*gridHeightScale, minGridHeight, maxGridHeight)
	gridWidth := width - PaddingLeft - PaddingRight

	g := Geometry{
		Width:       width,
		Height:      PaddingTop + gridHeight + remarksFixedHeight + float64(remarkCount)*remarkRowHeight,
		GridLeft:    PaddingLeft,
		GridTop:     PaddingTop,
		GridWidth:   gridWidth,
		GridHeight:  gridHeight,
		RowGap:      gridHeight / float64(len(logsheet.StatusRows)-1),
		RemarksTop:  PaddingTop + gridHeight + remarksRulerGap,
		RemarkCount: remarkCount,
	}
	if gridWidth > 0 {
		g.MinuteWidth = gridWidth / logsheet.MinutesPerDay
	}
	return g
}

// MinuteX maps a minute of day to its x coordinate.
func (g Geometry) MinuteX(minute float64) float64 {
	return g.GridLeft + minute*g.MinuteWidth
}

// LaneY maps a lane index to its y coordinate.
func (g Geometry) LaneY(row int) float64 {
	return g.GridTop + float64(row)*g.RowGap
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
