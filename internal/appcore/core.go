// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"gtfq-core/gtf"
	"gtfq/internal/cmdutil"
	"gtfq/internal/writers"
)

// Options is the shared runtime configuration both tools feed into Run.
type Options struct {
	Files           []string
	StrictScores    bool
	Quiet           bool
	NoMatchExitCode int
}

// VisitorFunc decides, per record, whether to keep it and what to emit.
type VisitorFunc[T any] func(file string, rec *gtf.Record) (keep bool, out T, err error)

// StartWriterFunc starts the output goroutine consuming T values.
type StartWriterFunc[T any] func(out io.Writer, bufSize int) (chan<- T, <-chan error)

const writerBuf = 256

// ReaderOptions maps tool options onto decoder options.
func ReaderOptions(o Options) []gtf.Option {
	var ropts []gtf.Option
	if o.StrictScores {
		ropts = append(ropts, gtf.StrictScores())
	}
	return ropts
}

// Run wires the scan loop to a writer goroutine and converts the outcome
// into the exit code contract: 0 ok, NoMatchExitCode when nothing matched,
// 3 on stream or write failure, 130 on cancellation, broken pipe is success.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	visit VisitorFunc[T],
	start StartWriterFunc[T],
) int {
	outw := bufio.NewWriter(stdout)

	inCh, writeErr := start(outw, writerBuf)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := cmdutil.RunStream[T](
		ctx, o.Files, ReaderOptions(o), visit,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	if total == 0 {
		return o.NoMatchExitCode
	}
	return 0
}
