// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf prints a WARN-prefixed line unless quiet is set. Both tools route
// non-fatal complaints (unreadable defaults file, skipped inputs) through it
// so --quiet silences them in one place.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}
