package client

import (
	"fmt"
	"math"
)

// FormatDuration renders seconds as "45s" or "1m 05s". Missing or zero durations render empty.
func FormatDuration(seconds *float64) string {
	if seconds == nil || *seconds <= 0 || math.IsNaN(*seconds) || math.IsInf(*seconds, 0) {
		return ""
	}
	total := int64(math.Round(*seconds))
	mins, secs := total/60, total%60
	if mins <= 0 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm %02ds", mins, secs)
}
