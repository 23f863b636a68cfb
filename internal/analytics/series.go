package analytics

import (
	"time"
)

// MonthlySeries materializes a rolling window of month buckets ending at the
// month of ref, oldest first. Months without trips appear zero-filled so
// chart axes stay continuous. Callers use 6 or 12 depending on the screen.
func MonthlySeries(sum Summary, months int, ref time.Time) []MonthTotals {
	if months <= 0 {
		return []MonthTotals{}
	}

	out := make([]MonthTotals, 0, months)
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := months - 1; i >= 0; i-- {
		key := first.AddDate(0, -i, 0).Format("2006-01")
		mt, ok := sum.Monthly[key]
		if !ok {
			mt = MonthTotals{Key: key}
		}
		out = append(out, mt)
	}
	return out
}
