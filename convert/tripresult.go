package convert

import (
	"github.com/princesinghrajput/eld-logsheet/logsheet"
	"github.com/princesinghrajput/eld-logsheet/trip"
)

// dayArrayRules is the ordered list of places upstream planners have been
// seen to put the day list. Rules are tried in priority order; the first
// populated array wins.
var dayArrayRules = [][]string{
	{"daily_logs"},
	{"logs"},
	{"hos_logs"},
	{"hos", "daily_logs"},
	{"summary", "daily_logs"},
	{"summary", "logs"},
	{"logbook"},
}

// NormalizeTripResult locates the day array within a raw trip result and
// normalizes every day in it. A nil or unrecognizable result yields an
// empty, non-nil slice; the caller decides whether to substitute the sample
// timeline.
func NormalizeTripResult(res *trip.Result) []logsheet.Day {
	days := []logsheet.Day{}
	if res == nil {
		return days
	}
	for _, path := range dayArrayRules {
		recs, ok := res.RecordsAt(path...)
		if !ok || len(recs) == 0 {
			continue
		}
		for i, rec := range recs {
			days = append(days, NormalizeDay(rec, i))
		}
		return days
	}
	return days
}
