package html

import (
	"fmt"
	"io"
	"time"

	"github.com/chenzhuo1005/OpENer/lib/format"
)

var startTime = time.Now()

func writeHeader(writer io.Writer) {
	fmt.Fprintf(writer, "Start time: %s<br>\n",
		startTime.Format(format.TimeFormatSeconds))
	fmt.Fprintf(writer, "Uptime: %s<br>\n",
		format.Duration(time.Since(startTime)))
}
