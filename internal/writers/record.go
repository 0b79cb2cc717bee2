package writers

import (
	"fmt"
	"io"

	"gtfq/internal/output"
	"gtfq/internal/pretty"
)

// StartRecordWriter spins up the writer goroutine for matched records and
// returns its input channel plus a one-shot error channel. The goroutine
// keeps draining the channel after a failure so producers never block on a
// dead sink.
func StartRecordWriter(out io.Writer, format string, header bool, prettyMode bool, bufSize int) (chan<- output.FileRecord, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	if format == "jsonl" {
		return StartRecordJSONLWriter(out, bufSize)
	}

	in := make(chan output.FileRecord, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []output.FileRecord
			for fr := range in {
				buf = append(buf, fr)
			}
			err = output.WriteJSON(out, buf)

		case "text":
			err = output.StreamTextWithRenderer(out, in, header, prettyMode,
				func(fr output.FileRecord) string { return pretty.RenderRecord(fr.Rec) },
			)

		default:
			for range in {
			}
			err = fmt.Errorf("unsupported output %q", format)
		}
		errCh <- err
	}()

	return in, errCh
}

// StartCountWriter consumes records and prints only their count once the
// stream closes, mirroring `grep -c`.
func StartCountWriter(out io.Writer, bufSize int) (chan<- output.FileRecord, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.FileRecord, bufSize)
	errCh := make(chan error, 1)

	go func() {
		n := 0
		for range in {
			n++
		}
		_, err := fmt.Fprintln(out, n)
		errCh <- err
	}()

	return in, errCh
}
