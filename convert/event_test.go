package convert

import (
	"testing"

	"github.com/princesinghrajput/eld-logsheet/logsheet"
	"github.com/princesinghrajput/eld-logsheet/trip"
)

func TestNormalizeEventStatusAndHours(t *testing.T) {
	// start_hour/end_hour are explicit hour fields: multiplied by 60, no
	// bare-number heuristic.
	ev, ok := NormalizeEvent(trip.Record{
		"status":     "Off",
		"start_hour": float64(0),
		"end_hour":   float64(5),
	}, "")
	if !ok {
		t.Fatal("event was rejected")
	}
	if ev.StatusKey != logsheet.StatusOffDuty {
		t.Errorf("StatusKey = %q, want %q", ev.StatusKey, logsheet.StatusOffDuty)
	}
	if ev.StartMinutes != 0 || ev.EndMinutes != 300 {
		t.Errorf("bounds = [%d, %d], want [0, 300]", ev.StartMinutes, ev.EndMinutes)
	}
	if ev.DurationMinutes != 300 {
		t.Errorf("DurationMinutes = %d, want 300", ev.DurationMinutes)
	}
}

func TestNormalizeEventFieldPreference(t *testing.T) {
	// status -> state -> label, first hit wins.
	ev, ok := NormalizeEvent(trip.Record{
		"state": "sleeper",
		"label": "driving",
		"start": "22:00",
		"end":   "23:30",
	}, "")
	if !ok {
		t.Fatal("event was rejected")
	}
	if ev.StatusKey != logsheet.StatusSleeper {
		t.Errorf("StatusKey = %q, want sleeper (state should beat label)", ev.StatusKey)
	}
	if ev.WindowLabel != "10:00 PM - 11:30 PM" {
		t.Errorf("WindowLabel = %q", ev.WindowLabel)
	}
}

func TestNormalizeEventRemarkWithoutStatus(t *testing.T) {
	// No status but annotated: kept as a lane-less remark.
	ev, ok := NormalizeEvent(trip.Record{
		"location":      "Pilot Travel Center",
		"note":          "fuel stop",
		"start_minutes": float64(600),
		"end_minutes":   float64(630),
	}, "")
	if !ok {
		t.Fatal("annotated remark was rejected")
	}
	if ev.StatusKey != "" {
		t.Errorf("StatusKey = %q, want empty", ev.StatusKey)
	}
	if ev.Label != "Remark" {
		t.Errorf("Label = %q, want Remark", ev.Label)
	}
}

func TestNormalizeEventRejections(t *testing.T) {
	tests := []struct {
		name string
		rec  trip.Record
	}{
		{name: "no status no annotation", rec: trip.Record{"status": "mystery", "start": "06:00", "end": "07:00"}},
		{name: "nothing at all", rec: trip.Record{}},
		{name: "note only, no times", rec: trip.Record{"note": "fuel stop"}},
		{name: "end equals start", rec: trip.Record{"status": "driving", "start": "06:00", "end": "06:00"}},
		{name: "end before start", rec: trip.Record{"status": "driving", "start": "10:00", "end": "06:00"}},
		{name: "unresolvable start", rec: trip.Record{"status": "driving", "start": "whenever", "end": "10:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := NormalizeEvent(tt.rec, ""); ok {
				t.Error("expected rejection")
			}
		})
	}
}

func TestNormalizeEventLocationFallbacks(t *testing.T) {
	ev, ok := NormalizeEvent(trip.Record{
		"status": "dr",
		"city":   "Boise, ID",
		"reason": "route leg",
		"start":  "06:00",
		"end":    "10:00",
	}, "")
	if !ok {
		t.Fatal("event was rejected")
	}
	if ev.Location != "Boise, ID" {
		t.Errorf("Location = %q", ev.Location)
	}
	if ev.Note != "route leg" {
		t.Errorf("Note = %q", ev.Note)
	}
}

func TestNormalizeEventDateHint(t *testing.T) {
	ev, ok := NormalizeEvent(trip.Record{
		"status":     "driving",
		"start_time": "06:00:00",
		"end_time":   "10:00:00",
	}, "2024-01-10")
	if !ok {
		t.Fatal("event was rejected")
	}
	if ev.StartMinutes != 360 || ev.EndMinutes != 600 {
		t.Errorf("bounds = [%d, %d], want [360, 600]", ev.StartMinutes, ev.EndMinutes)
	}
}
