package logsheet

// MinutesPerDay is the length of one log sheet in minutes.
const MinutesPerDay = 1440

// Violation severities.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Event is one contiguous duty interval within a single 24-hour sheet.
// StatusKey is empty for annotation-only remarks that carry no lane.
// Invariant: 0 <= StartMinutes < EndMinutes <= 1440.
type Event struct {
	StatusKey       string `json:"statusKey,omitempty"`
	Label           string `json:"label"`
	StartMinutes    int    `json:"startMinutes"`
	EndMinutes      int    `json:"endMinutes"`
	DurationMinutes int    `json:"durationMinutes"`
	Location        string `json:"location,omitempty"`
	Note            string `json:"note,omitempty"`
	WindowLabel     string `json:"windowLabel"`
}

// HasAnnotation reports whether the event carries remark text and therefore
// occupies a row in the remarks ledger.
func (e Event) HasAnnotation() bool {
	return e.Location != "" || e.Note != ""
}

// Metrics are the per-status duration totals derived from a day's events.
type Metrics struct {
	DrivingMinutes int     `json:"drivingMinutes"`
	OnDutyMinutes  int     `json:"onDutyMinutes"`
	OffDutyMinutes int     `json:"offDutyMinutes"`
	SleeperMinutes int     `json:"sleeperMinutes"`
	RestMinutes    int     `json:"restMinutes"`
	Coverage       float64 `json:"coverage"`
}

// Violation is one HOS compliance finding reported by the planner.
type Violation struct {
	Type     string `json:"type"`
	Detail   string `json:"detail,omitempty"`
	Severity string `json:"severity"`
	At       string `json:"at,omitempty"`
}

// Day is one 24-hour log sheet. Events are sorted ascending by StartMinutes;
// overlap between events is tolerated, so Coverage may exceed 1.0.
type Day struct {
	ID         string      `json:"id"`
	Label      string      `json:"label"`
	Date       string      `json:"date,omitempty"`
	Headline   string      `json:"headline,omitempty"`
	Events     []Event     `json:"events"`
	Totals     Metrics     `json:"totals"`
	Violations []Violation `json:"violations"`
	Coverage   float64     `json:"coverage"`
	IsSample   bool        `json:"isSample"`
}

// RemarkCount returns the number of events carrying remark text.
func (d Day) RemarkCount() int {
	n := 0
	for _, ev := range d.Events {
		if ev.HasAnnotation() {
			n++
		}
	}
	return n
}
