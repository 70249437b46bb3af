package convert

import (
	"fmt"
	"sort"

	"github.com/princesinghrajput/eld-logsheet/logsheet"
	"github.com/princesinghrajput/eld-logsheet/trip"
)

// NormalizeDay converts one raw day-like record into a canonical Day. index
// is the day's position within the trip result, used for fallback ids and
// labels.
func NormalizeDay(rec trip.Record, index int) logsheet.Day {
	dateHint := rec.String("date", "day", "log_date")
	events := normalizeEvents(rec, dateHint)
	totals := AggregateMetrics(events)

	dateSource := rec.String("date", "day", "log_date", "start_date")

	id := rec.String("id")
	if id == "" {
		id = dateSource
	}
	if id == "" {
		id = fmt.Sprintf("day-%d", index)
	}

	return logsheet.Day{
		ID:         id,
		Label:      logsheet.FormatDateLabel(dateSource, index),
		Date:       dateSource,
		Headline:   rec.String("headline", "note", "summary"),
		Events:     events,
		Totals:     totals,
		Violations: NormalizeViolations(rec),
		Coverage:   totals.Coverage,
	}
}

func normalizeEvents(rec trip.Record, dateHint string) []logsheet.Event {
	raw := eventRecords(rec)
	events := make([]logsheet.Event, 0, len(raw))
	for _, r := range raw {
		if ev, ok := NormalizeEvent(r, dateHint); ok {
			events = append(events, ev)
		}
	}
	// Stable: ties keep source order.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartMinutes < events[j].StartMinutes
	})
	return events
}

// eventRecords merges the segments, remarks and events arrays in that order.
// Only when all three are absent or empty does it fall back to timeline, then
// periods.
func eventRecords(rec trip.Record) []trip.Record {
	var combined []trip.Record
	for _, key := range []string{"segments", "remarks", "events"} {
		combined = append(combined, rec.Records(key)...)
	}
	if len(combined) > 0 {
		return combined
	}
	if timeline := rec.Records("timeline"); len(timeline) > 0 {
		return timeline
	}
	return rec.Records("periods")
}
