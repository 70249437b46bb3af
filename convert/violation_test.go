package convert

import (
	"testing"

	"github.com/princesinghrajput/eld-logsheet/logsheet"
	"github.com/princesinghrajput/eld-logsheet/trip"
)

func TestNormalizeViolations(t *testing.T) {
	rec := trip.Record{
		"violations": []any{
			map[string]any{"type": "11-Hour Driving Limit", "detail": "Exceeded by 20 minutes", "at": "22:40"},
			map[string]any{"code": "CRITICAL-30MIN-BREAK", "message": "No 30-minute break taken"},
			map[string]any{"severity": "info", "description": "Advisory only", "time": "08:00"},
			map[string]any{},
		},
	}

	got := NormalizeViolations(rec)
	if len(got) != 4 {
		t.Fatalf("got %d violations, want 4", len(got))
	}

	want := []logsheet.Violation{
		{Type: "11-Hour Driving Limit", Detail: "Exceeded by 20 minutes", Severity: logsheet.SeverityWarning, At: "22:40"},
		{Type: "CRITICAL-30MIN-BREAK", Detail: "No 30-minute break taken", Severity: logsheet.SeverityCritical},
		{Type: "Violation", Detail: "Advisory only", Severity: logsheet.SeverityInfo, At: "08:00"},
		{Type: "Violation", Severity: logsheet.SeverityWarning},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("violation %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestNormalizeViolationsAbsent(t *testing.T) {
	got := NormalizeViolations(trip.Record{})
	if got == nil {
		t.Fatal("want empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("got %d violations, want 0", len(got))
	}
}
