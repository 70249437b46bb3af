package logsheet

import "strings"

// Canonical duty-status keys. These are the only values Event.StatusKey may
// hold besides the empty string (an annotation-only remark).
const (
	StatusOffDuty = "off-duty"
	StatusSleeper = "sleeper"
	StatusDriving = "driving"
	StatusOnDuty  = "on-duty"
)

// StatusDefinition describes one duty-status lane of the log grid.
type StatusDefinition struct {
	Key     string
	Label   string
	Short   string
	Color   string
	Aliases []string
}

// StatusRows lists the four duty statuses in fixed lane order:
// row 0 = Off Duty, row 1 = Sleeper Berth, row 2 = Driving, row 3 = On Duty.
// Alias sets are disjoint; matching is case-insensitive.
var StatusRows = []StatusDefinition{
	{Key: StatusOffDuty, Label: "Off Duty", Short: "OFF", Color: "#38bdf8", Aliases: []string{"off", "off_duty", "off-duty"}},
	{Key: StatusSleeper, Label: "Sleeper Berth", Short: "SB", Color: "#a78bfa", Aliases: []string{"sleeper", "sleeper berth", "sleeper_berth", "sb"}},
	{Key: StatusDriving, Label: "Driving", Short: "DR", Color: "#34d399", Aliases: []string{"drive", "driving", "d", "dr"}},
	{Key: StatusOnDuty, Label: "On Duty (Not Driving)", Short: "ON", Color: "#fbbf24", Aliases: []string{"on", "on-duty", "on_duty", "onduty", "on duty"}},
}

var statusLookup = func() map[string]string {
	m := make(map[string]string)
	for _, row := range StatusRows {
		m[row.Key] = row.Key
		for _, alias := range row.Aliases {
			m[alias] = row.Key
		}
	}
	return m
}()

// StatusKeyFor resolves a raw status string to a canonical key through the
// alias table. ok is false for values outside the table.
func StatusKeyFor(raw string) (string, bool) {
	key, ok := statusLookup[strings.ToLower(strings.TrimSpace(raw))]
	return key, ok
}

// StatusFor returns the definition for a canonical key. Unknown keys fall back
// to the Off Duty row so callers always get a drawable definition.
func StatusFor(key string) StatusDefinition {
	for _, row := range StatusRows {
		if row.Key == key {
			return row
		}
	}
	return StatusRows[0]
}

// RowIndexFor returns the lane index for a canonical key, -1 when the key is
// empty or unknown.
func RowIndexFor(key string) int {
	for i, row := range StatusRows {
		if row.Key == key {
			return i
		}
	}
	return -1
}
