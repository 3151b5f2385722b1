/*
	Package format provides convenience functions for formatting.
*/
package format

import (
	"time"
)

const TimeFormatSeconds = "02 Jan 2006 15:04:05 MST"

// Duration renders duration with 3 digits of precision below 1 minute and
// to the second above it.
func Duration(duration time.Duration) string {
	return formatDuration(duration)
}
