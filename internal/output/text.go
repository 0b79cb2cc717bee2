// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// StreamTextWithRenderer prints one TSV row per record as they arrive,
// optionally followed by a pretty block from render. After a write error the
// channel keeps draining so upstream producers never block on a dead writer.
func StreamTextWithRenderer(w io.Writer, in <-chan FileRecord, header bool, prettyMode bool, render func(FileRecord) string) error {
	var err error
	if header {
		_, err = fmt.Fprintln(w, TSVHeader)
	}
	for fr := range in {
		if err != nil {
			continue
		}
		if _, err = fmt.Fprintln(w, FormatRecordRowTSV(fr)); err != nil {
			continue
		}
		if prettyMode && render != nil {
			_, err = io.WriteString(w, render(fr))
		}
	}
	return err
}
