package convert

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/princesinghrajput/eld-logsheet/logsheet"
)

var clockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// ResolveMinutes converts a heterogeneous time value into a minute of day in
// [0, 1440]. Accepted forms, tried in order: a number (minutes), an "H:MM"
// clock string, a bare numeric string (>24 means minutes, otherwise hours),
// a full datetime string (minutes since that date's midnight), and a bare
// time-of-day string combined with dateHint. ok is false when nothing matches.
func ResolveMinutes(value any, dateHint string) (int, bool) {
	switch v := value.(type) {
	case float64:
		return clampMinutes(v), true
	case int:
		return clampMinutes(float64(v)), true
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return clampMinutes(f), true
		}
		return 0, false
	case string:
		return resolveStringMinutes(v, dateHint)
	}
	return 0, false
}

func resolveStringMinutes(value, dateHint string) (int, bool) {
	if clockPattern.MatchString(value) {
		sep := 0
		for i := range value {
			if value[i] == ':' {
				sep = i
			}
		}
		h, _ := strconv.Atoi(value[:sep])
		m, _ := strconv.Atoi(value[sep+1:])
		return clampMinutes(float64(h*60 + m)), true
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		// Values above 24 can only be minutes; at or below they are taken
		// as hours. Ambiguous for small minute counts, kept as upstream
		// produces both "90" and "1.5".
		if f > 24 {
			return clampMinutes(f), true
		}
		return clampMinutes(f * 60), true
	}

	if t, ok := logsheet.ParseDate(value); ok {
		return clampMinutes(minutesIntoDay(t)), true
	}

	if dateHint != "" {
		if t, ok := logsheet.ParseDate(dateHint + "T" + value); ok {
			return clampMinutes(minutesIntoDay(t)), true
		}
	}

	return 0, false
}

func minutesIntoDay(t time.Time) float64 {
	return float64(t.Hour()*60+t.Minute()) + float64(t.Second())/60
}

func clampMinutes(v float64) int {
	m := int(math.Round(v))
	if m < 0 {
		return 0
	}
	if m > logsheet.MinutesPerDay {
		return logsheet.MinutesPerDay
	}
	return m
}
