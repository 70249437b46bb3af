package convert

import "github.com/princesinghrajput/eld-logsheet/logsheet"

// AggregateMetrics sums per-status durations over a day's events. Coverage
// counts every event regardless of status and is a raw ratio of the
// 1440-minute day: overlapping source events push it past 1.0 and that is
// passed through, not corrected.
func AggregateMetrics(events []logsheet.Event) logsheet.Metrics {
	var m logsheet.Metrics
	covered := 0
	for _, ev := range events {
		covered += ev.DurationMinutes
		switch ev.StatusKey {
		case logsheet.StatusDriving:
			m.DrivingMinutes += ev.DurationMinutes
			m.OnDutyMinutes += ev.DurationMinutes
		case logsheet.StatusOnDuty:
			m.OnDutyMinutes += ev.DurationMinutes
		case logsheet.StatusOffDuty:
			m.OffDutyMinutes += ev.DurationMinutes
		case logsheet.StatusSleeper:
			m.SleeperMinutes += ev.DurationMinutes
		}
	}
	m.RestMinutes = m.OffDutyMinutes + m.SleeperMinutes
	if covered > 0 {
		m.Coverage = float64(covered) / logsheet.MinutesPerDay
	}
	return m
}
