package gtf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const (
	// Scanner sizing: attribute blobs on real annotation lines (Ensembl,
	// GENCODE exports) routinely blow past bufio's default 64 KiB token
	// cap, so the ceiling is set generously high.
	initialBufSize = 64 * 1024
	maxLineSize    = 64 * 1024 * 1024
)

// Option adjusts Reader behavior.
type Option func(*options)

type options struct {
	strictScores bool
}

// StrictScores makes a score column that is neither "." nor a number surface
// as a *ScoreError instead of silently decoding to 0. The error is isolated
// to its line; the Reader stays usable and the next Read continues with the
// following line.
func StrictScores() Option {
	return func(o *options) { o.strictScores = true }
}

// Reader pulls GTF records out of a line-oriented byte stream.
//
// Lines that do not match the record grammar (comments, blank lines,
// browser/track headers, truncated records) are skipped silently; they
// never end the stream early. Read returns io.EOF once input is exhausted.
// A Reader must not be shared between goroutines.
type Reader struct {
	sc   *bufio.Scanner
	c    io.Closer // set by Open; nil for NewReader
	opts options
	line int
}

// NewReader returns a Reader consuming r line by line, exactly once.
func NewReader(r io.Reader, opts ...Option) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, initialBufSize), maxLineSize)
	gr := &Reader{sc: sc}
	for _, opt := range opts {
		opt(&gr.opts)
	}
	return gr
}

// Read returns the next record in input order, io.EOF at end of input, or a
// wrapped scanner error if the underlying stream failed. Under StrictScores
// it can also return a *ScoreError for a single bad line.
func (r *Reader) Read() (*Record, error) {
	for r.sc.Scan() {
		r.line++
		line := sanitizeLine(r.sc.Text())
		if !validLine(line) {
			continue
		}
		rec, err := decode(line, r.line, r.opts.strictScores)
		if errors.Is(err, errFieldRange) {
			continue // demoted to malformed, same as a grammar miss
		}
		if err != nil {
			return nil, err
		}
		return rec, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("gtf scan: %w", err)
	}
	return nil, io.EOF
}

// ReadAll drains the Reader, returning every remaining record in input
// order. On error the records decoded so far are returned alongside it.
func (r *Reader) ReadAll() ([]Record, error) {
	var recs []Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, *rec)
	}
}

// Close releases the underlying stream of a Reader built by Open. For a
// Reader built by NewReader it is a no-op, the caller owns the stream.
func (r *Reader) Close() error {
	if r.c == nil {
		return nil
	}
	return r.c.Close()
}
