package render

import "github.com/princesinghrajput/eld-logsheet/logsheet"

// HitTest maps a pointer position to the event covering that minute of day.
// Positions outside the grid's horizontal bounds miss. The covering event is
// the first one, in the day's ascending order, whose [start, end) half-open
// interval contains the minute; a linear scan is fine at tens of events per
// day.
func HitTest(x, y float64, g Geometry, day logsheet.Day) (logsheet.Event, bool) {
	_ = y // lanes span the full grid height, only x selects a time
	if g.MinuteWidth <= 0 || x < g.GridLeft || x > g.Width-PaddingRight {
		return logsheet.Event{}, false
	}

	minute := (x - g.GridLeft) / g.MinuteWidth
	if minute < 0 {
		minute = 0
	}
	if minute > logsheet.MinutesPerDay {
		minute = logsheet.MinutesPerDay
	}

	for _, ev := range day.Events {
		if minute >= float64(ev.StartMinutes) && minute < float64(ev.EndMinutes) {
			return ev, true
		}
	}
	return logsheet.Event{}, false
}
