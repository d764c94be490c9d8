package exporter

import (
	"fmt"
	"time"

	"retailcli/pkg/contracts/domain"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal
// places, so values like 13.4 appear as 13.40.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatInt formats an int64 value for CSV output.
func formatInt(i int64) string {
	return fmt.Sprintf("%d", i)
}

// formatNullFloat renders a nullable float; null becomes the empty string,
// never zero.
func formatNullFloat(n domain.NullFloat64) string {
	if !n.Valid {
		return ""
	}
	return formatFloat(n.Float64)
}

// formatTime renders a timestamp for CSV output; the zero time renders as
// the empty string.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

// formatNullTime renders a nullable timestamp.
func formatNullTime(n domain.NullTime) string {
	if !n.Valid {
		return ""
	}
	return formatTime(n.Time)
}
