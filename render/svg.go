package render

import (
	"fmt"
	"strings"

	"github.com/princesinghrajput/eld-logsheet/logsheet"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// RenderSheet draws a day's full log sheet as an SVG document. Drawing order
// is fixed: background, grid border, lane lines with labels, vertical hour
// lines, top ruler, duty segments with connectors, remarks header, second
// ruler, remark rows. A zero-width geometry yields "" so callers can skip the
// frame instead of failing.
func RenderSheet(day logsheet.Day, g Geometry, theme Theme) string {
	if g.Width <= 0 || g.GridWidth <= 0 {
		return ""
	}
	p := paletteFor(theme)

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" font-family="Inter, sans-serif">`,
		g.Width, g.Height, g.Width, g.Height)

	fmt.Fprintf(&b, `<rect width="%.0f" height="%.0f" fill="%s"/>`, g.Width, g.Height, p.Background)

	fmt.Fprintf(&b,
		`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="2"/>`,
		g.GridLeft, g.GridTop, g.GridWidth, g.GridHeight, p.Border)

	drawLanes(&b, g, p)
	drawHourLines(&b, g, p)
	drawRuler(&b, g, p, g.GridTop)
	drawSegments(&b, day.Events, g, p)
	drawRemarks(&b, day.Events, g, p)

	b.WriteString(`</svg>`)
	return b.String()
}

func drawLanes(b *strings.Builder, g Geometry, p palette) {
	for i, row := range logsheet.StatusRows {
		y := g.LaneY(i)
		fmt.Fprintf(b,
			`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`,
			g.GridLeft, y, g.Width-PaddingRight, y, p.GridLine)
		fmt.Fprintf(b,
			`<text x="%.1f" y="%.1f" text-anchor="end" dominant-baseline="middle" font-size="12" font-weight="bold" fill="%s">%s</text>`,
			g.GridLeft-15, y, p.Text, xmlEscaper.Replace(row.Label))
		fmt.Fprintf(b,
			`<text x="%.1f" y="%.1f" text-anchor="end" dominant-baseline="middle" font-size="12" font-weight="bold" fill="%s">%s</text>`,
			g.GridLeft-15, y+14, row.Color, row.Short)
	}
}

func drawHourLines(b *strings.Builder, g Geometry, p palette) {
	for h := 0; h <= 24; h++ {
		x := g.MinuteX(float64(h * 60))
		fmt.Fprintf(b,
			`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`,
			x, g.GridTop, x, g.GridTop+g.GridHeight, p.HourLine)
	}
}

// drawRuler draws one 24-hour ruler ending at baseline y: major ticks every
// 60 minutes labeled M/1..11/N/1..11/M, minor ticks at 15/30/45.
func drawRuler(b *strings.Builder, g Geometry, p palette, y float64) {
	for h := 0; h <= 24; h++ {
		x := g.MinuteX(float64(h * 60))
		fmt.Fprintf(b,
			`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`,
			x, y, x, y-10, p.HourLine)
		fmt.Fprintf(b,
			`<text x="%.1f" y="%.1f" text-anchor="middle" font-size="10" fill="%s">%s</text>`,
			x, y-15, p.Text, hourLabel(h))

		if h < 24 {
			for quarter := 1; quarter < 4; quarter++ {
				xm := g.MinuteX(float64(h*60 + quarter*15))
				fmt.Fprintf(b,
					`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`,
					xm, y, xm, y-5, p.GridLine)
			}
		}
	}
}

// hourLabel follows the printed FMCSA sheet: M for both midnights, N for
// noon, hour-of-12 otherwise.
func hourLabel(h int) string {
	switch {
	case h == 0 || h == 24:
		return "M"
	case h == 12:
		return "N"
	case h > 12:
		return fmt.Sprintf("%d", h-12)
	default:
		return fmt.Sprintf("%d", h)
	}
}

// drawSegments draws one 4px horizontal stroke per laned event. Butt line
// caps keep transitions sharp. When consecutive laned events sit on
// different lanes a connector is drawn at the exact transition minute.
func drawSegments(b *strings.Builder, events []logsheet.Event, g Geometry, p palette) {
	lastY := -1.0
	for _, ev := range events {
		row := logsheet.RowIndexFor(ev.StatusKey)
		if row < 0 {
			continue
		}
		y := g.LaneY(row)
		startX := g.MinuteX(float64(ev.StartMinutes))
		endX := g.MinuteX(float64(ev.EndMinutes))

		if lastY >= 0 && lastY != y {
			fmt.Fprintf(b,
				`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5"/>`,
				startX, lastY, startX, y, p.Connector)
		}

		fmt.Fprintf(b,
			`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="4" stroke-linecap="butt"/>`,
			startX, y, endX, y, logsheet.StatusFor(ev.StatusKey).Color)

		lastY = y
	}
}

// drawRemarks draws the ledger: header, a second hour ruler, then one row per
// annotated event in chronological order, each with a dot on the ruler at its
// start minute and a dashed leader line down and sideways to the text.
func drawRemarks(b *strings.Builder, events []logsheet.Event, g Geometry, p palette) {
	fmt.Fprintf(b,
		`<text x="%.1f" y="%.1f" font-size="14" font-weight="bold" fill="%s">REMARKS</text>`,
		g.GridLeft, g.RemarksTop-35, p.TextStrong)

	fmt.Fprintf(b,
		`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`,
		g.GridLeft, g.RemarksTop, g.Width-PaddingRight, g.RemarksTop, p.Border)
	drawRuler(b, g, p, g.RemarksTop)

	rowY := g.RemarksTop + remarkFirstRow
	for _, ev := range events {
		if !ev.HasAnnotation() {
			continue
		}
		x := g.MinuteX(float64(ev.StartMinutes))

		fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="2" fill="%s"/>`, x, g.RemarksTop, p.RemarkDot)
		fmt.Fprintf(b,
			`<polyline points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="none" stroke="%s" stroke-width="1" stroke-dasharray="2,2"/>`,
			x, g.RemarksTop, x, rowY-4, g.GridLeft+100, rowY-4, p.LeaderLine)

		fmt.Fprintf(b,
			`<text x="%.1f" y="%.1f" font-size="11" fill="%s">%s</text>`,
			g.GridLeft+110, rowY, p.Text, xmlEscaper.Replace(remarkText(ev)))

		rowY += remarkRowHeight
	}
}

func remarkText(ev logsheet.Event) string {
	text := logsheet.FormatClock(ev.StartMinutes) + " - " + ev.Location
	if ev.Note != "" {
		text += " (" + ev.Note + ")"
	}
	return text
}
