package format

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

func formatDuration(duration time.Duration) string {
	switch {
	case duration < time.Microsecond:
		return fmt.Sprintf("%dns", duration.Nanoseconds())
	case duration < time.Millisecond:
		return fmt.Sprintf("%.3gµs", float64(duration)/float64(time.Microsecond))
	case duration < time.Second:
		return fmt.Sprintf("%.3gms", float64(duration)/float64(time.Millisecond))
	case duration < time.Minute:
		return fmt.Sprintf("%.3gs", duration.Seconds())
	}
	duration -= duration % time.Second
	if duration < day {
		return duration.String()
	}
	return fmt.Sprintf("%dd%s", duration/day, duration%day)
}
