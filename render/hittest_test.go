package render

import (
	"testing"

	"github.com/princesinghrajput/eld-logsheet/logsheet"
)

func drivingDay() logsheet.Day {
	return logsheet.Day{Events: []logsheet.Event{{
		StatusKey:       logsheet.StatusDriving,
		StartMinutes:    360,
		EndMinutes:      600,
		DurationMinutes: 240,
	}}}
}

func TestHitTestFindsCoveringEvent(t *testing.T) {
	day := drivingDay()
	g := LayoutDay(day, 1000)

	// Pointer at minute 400.
	x := g.MinuteX(400)
	ev, ok := HitTest(x, g.GridTop+10, g, day)
	if !ok {
		t.Fatal("expected a hit at minute 400")
	}
	if ev.StatusKey != logsheet.StatusDriving {
		t.Errorf("hit %q, want driving", ev.StatusKey)
	}
}

func TestHitTestMissesUncoveredMinute(t *testing.T) {
	day := drivingDay()
	g := LayoutDay(day, 1000)

	if _, ok := HitTest(g.MinuteX(100), g.GridTop+10, g, day); ok {
		t.Error("minute 100 has no covering event")
	}
}

func TestHitTestHalfOpenInterval(t *testing.T) {
	day := drivingDay()
	// Width chosen so the grid spans exactly 1440px: one px per minute, no
	// float noise at the interval edges.
	g := LayoutDay(day, 1570)

	if _, ok := HitTest(g.MinuteX(360), 0, g, day); !ok {
		t.Error("start minute is inside the interval")
	}
	if _, ok := HitTest(g.MinuteX(600), 0, g, day); ok {
		t.Error("end minute is outside the half-open interval")
	}
}

func TestHitTestOutsideGridBounds(t *testing.T) {
	day := drivingDay()
	g := LayoutDay(day, 1000)

	if _, ok := HitTest(g.GridLeft-5, 0, g, day); ok {
		t.Error("left of the grid must miss")
	}
	if _, ok := HitTest(g.Width-PaddingRight+5, 0, g, day); ok {
		t.Error("right of the grid must miss")
	}
}

func TestHitTestZeroWidth(t *testing.T) {
	day := drivingDay()
	g := LayoutDay(day, 0)
	if _, ok := HitTest(50, 0, g, day); ok {
		t.Error("degenerate geometry must never hit")
	}
}
