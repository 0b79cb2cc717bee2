// internal/appcore/exit.go
package appcore

import (
	"bufio"
	"fmt"
	"io"

	"gtfq/internal/writers"
)

// FlushExit flushes outw and maps write failures onto exit codes: broken
// pipe degrades to success, anything else to 3. Otherwise code passes
// through. Usage and version paths share it so the flush dance lives once.
func FlushExit(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
