package convert

import (
	"math"

	"github.com/princesinghrajput/eld-logsheet/logsheet"
	"github.com/princesinghrajput/eld-logsheet/trip"
)

// Field preference order for event time bounds. The first present field wins;
// the explicit hour fields are a separate fallback resolved without the
// bare-number heuristic.
var (
	startFields = []string{"start_minutes", "start", "start_time", "startHour"}
	endFields   = []string{"end_minutes", "end", "end_time", "endHour"}
)

// NormalizeEvent converts one raw event-like record into a canonical Event
// using the day's date hint to resolve bare time-of-day strings. Records with
// no recognizable status and no annotation, unresolvable bounds, or a
// non-positive duration are dropped (ok=false).
func NormalizeEvent(rec trip.Record, dateHint string) (logsheet.Event, bool) {
	statusKey, _ := logsheet.StatusKeyFor(rec.String("status", "state", "label"))
	location := rec.String("location", "city", "place")
	note := rec.String("note", "reason")

	// No status and nothing to say: the record carries no information.
	if statusKey == "" && location == "" && note == "" {
		return logsheet.Event{}, false
	}

	start, okStart := resolveBound(rec, startFields, "start_hour", dateHint)
	end, okEnd := resolveBound(rec, endFields, "end_hour", dateHint)
	if !okStart || !okEnd || end <= start {
		return logsheet.Event{}, false
	}

	label := "Remark"
	if statusKey != "" {
		label = logsheet.StatusFor(statusKey).Label
	}

	return logsheet.Event{
		StatusKey:       statusKey,
		Label:           label,
		StartMinutes:    start,
		EndMinutes:      end,
		DurationMinutes: end - start,
		Location:        location,
		Note:            note,
		WindowLabel:     logsheet.WindowLabel(start, end),
	}, true
}

func resolveBound(rec trip.Record, fields []string, hourField, dateHint string) (int, bool) {
	if v, ok := rec.First(fields...); ok {
		if m, ok := ResolveMinutes(v, dateHint); ok {
			return m, true
		}
	}
	if h, ok := rec.Float(hourField); ok {
		return clampMinutes(math.Round(h * 60)), true
	}
	return 0, false
}
