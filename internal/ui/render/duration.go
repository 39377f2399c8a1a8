package render

import (
	"fmt"
	"time"
)

// FormatDuration formats d as m:ss, or h:mm:ss from one hour up.
// Negative durations render as 0:00.
func FormatDuration(d time.Duration) string {
	d = max(d, 0).Round(time.Second)
	h := int(d / time.Hour)
	m := int(d%time.Hour) / int(time.Minute)
	s := int(d%time.Minute) / int(time.Second)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
