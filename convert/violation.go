package convert

import (
	"strings"

	"github.com/princesinghrajput/eld-logsheet/logsheet"
	"github.com/princesinghrajput/eld-logsheet/trip"
)

// NormalizeViolations maps a raw day's violation records into canonical
// Violations. A day without violations yields an empty, non-nil slice.
func NormalizeViolations(rec trip.Record) []logsheet.Violation {
	raw := rec.Records("violations")
	out := make([]logsheet.Violation, 0, len(raw))
	for _, r := range raw {
		rawType := r.String("type", "code")

		severity := r.String("severity")
		if severity == "" {
			severity = logsheet.SeverityWarning
			if strings.Contains(strings.ToLower(rawType), "critical") {
				severity = logsheet.SeverityCritical
			}
		}

		vType := rawType
		if vType == "" {
			vType = "Violation"
		}

		out = append(out, logsheet.Violation{
			Type:     vType,
			Detail:   r.String("detail", "message", "description"),
			Severity: severity,
			At:       r.String("at", "time"),
		})
	}
	return out
}
