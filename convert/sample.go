package convert

import (
	"fmt"
	"time"

	"github.com/princesinghrajput/eld-logsheet/logsheet"
	"github.com/princesinghrajput/eld-logsheet/trip"
)

type sampleSegment struct {
	status   string
	start    int
	end      int
	location string
}

// Two hand-authored demonstration days. The "break" entry is intentionally
// not a recognized status and gets dropped by the normal event rules, leaving
// a gap in the first day's grid.
var sampleTemplates = [][]sampleSegment{
	{
		{status: "off-duty", start: 0, end: 300, location: "Home Terminal"},
		{status: "on-duty", start: 300, end: 360, location: "Pre-trip"},
		{status: "driving", start: 360, end: 600, location: "I-84"},
		{status: "break", start: 600, end: 645},
		{status: "driving", start: 645, end: 825, location: "Boise, ID"},
		{status: "on-duty", start: 825, end: 870, location: "Fuel + Inspect"},
		{status: "driving", start: 870, end: 990, location: "Pendleton, OR"},
		{status: "sleeper", start: 990, end: 1320, location: "Rest Area"},
		{status: "off-duty", start: 1320, end: 1440, location: "Off Duty"},
	},
	{
		{status: "sleeper", start: 0, end: 360, location: "Rest Area"},
		{status: "on-duty", start: 360, end: 420, location: "Pre-trip"},
		{status: "driving", start: 420, end: 660, location: "Columbia River"},
		{status: "on-duty", start: 660, end: 705, location: "Load Check"},
		{status: "driving", start: 705, end: 900, location: "Portland, OR"},
		{status: "on-duty", start: 900, end: 960, location: "Dock Time"},
		{status: "off-duty", start: 960, end: 1200, location: "Hotel"},
		{status: "sleeper", start: 1200, end: 1440, location: "Sleeper Berth"},
	},
}

// SampleDays builds the two-day demonstration timeline shown when the planner
// returned no usable log data. Days start the day before now. Totals go
// through the same aggregator as real data.
func SampleDays(now time.Time) []logsheet.Day {
	base := now.AddDate(0, 0, -1)
	days := make([]logsheet.Day, 0, len(sampleTemplates))

	for idx, template := range sampleTemplates {
		date := base.AddDate(0, 0, idx)
		events := make([]logsheet.Event, 0, len(template))
		for _, seg := range template {
			key, ok := logsheet.StatusKeyFor(seg.status)
			if !ok {
				continue
			}
			events = append(events, logsheet.Event{
				StatusKey:       key,
				Label:           logsheet.StatusFor(key).Label,
				StartMinutes:    seg.start,
				EndMinutes:      seg.end,
				DurationMinutes: seg.end - seg.start,
				Location:        seg.location,
				WindowLabel:     logsheet.WindowLabel(seg.start, seg.end),
			})
		}

		totals := AggregateMetrics(events)
		day := logsheet.Day{
			ID:         fmt.Sprintf("sample-%d", idx),
			Label:      date.Format("Mon, Jan 2"),
			Date:       date.Format("2006-01-02"),
			Events:     events,
			Totals:     totals,
			Violations: []logsheet.Violation{},
			Coverage:   totals.Coverage,
			IsSample:   true,
		}
		if idx == 1 {
			day.Violations = []logsheet.Violation{{
				Type:     "14-Hour Window Warning",
				Detail:   "On-duty time nearly exceeded 14-hour limit. Plan next rest earlier.",
				Severity: logsheet.SeverityWarning,
			}}
		}
		days = append(days, day)
	}
	return days
}

// DaysOrSample returns the normalized days when the trip result produced any,
// else the sample timeline.
func DaysOrSample(res *trip.Result, now time.Time) []logsheet.Day {
	if days := NormalizeTripResult(res); len(days) > 0 {
		return days
	}
	return SampleDays(now)
}
