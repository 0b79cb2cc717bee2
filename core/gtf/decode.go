package gtf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ScoreError reports a score column that was neither "." nor a parsable
// number, on a Reader configured with StrictScores. The offending line is
// consumed; the next Read resumes with the following line.
type ScoreError struct {
	Line int    // 1-based physical line number in the input stream
	Text string // raw score column
	Err  error
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("line %d: malformed score %q", e.Line, e.Text)
}

func (e *ScoreError) Unwrap() error { return e.Err }

// errFieldRange demotes a grammar-valid line to malformed. The validator
// already guarantees digit-only start and end columns, so the only way to
// reach it is a coordinate too large for uint64.
var errFieldRange = errors.New("coordinate out of range")

// cursor walks a line left to right, producing whitespace-delimited tokens
// and ';'-terminated tails. The two cuts interleave exactly the way the
// attribute grammar nests: key by token, value by everything up to ';'.
type cursor struct {
	s string
	i int
}

func (c *cursor) skipSpace() {
	for c.i < len(c.s) && (c.s[c.i] == ' ' || c.s[c.i] == '\t') {
		c.i++
	}
}

// token returns the next whitespace-delimited token, or "" past end of line.
func (c *cursor) token() string {
	c.skipSpace()
	start := c.i
	for c.i < len(c.s) && c.s[c.i] != ' ' && c.s[c.i] != '\t' {
		c.i++
	}
	return c.s[start:c.i]
}

// untilSemi returns everything up to the next ';' (which is consumed), or
// the whole remainder of the line when no ';' is left.
func (c *cursor) untilSemi() string {
	start := c.i
	if j := strings.IndexByte(c.s[c.i:], ';'); j >= 0 {
		c.i += j + 1
		return c.s[start : c.i-1]
	}
	c.i = len(c.s)
	return c.s[start:]
}

// decode builds a Record from a line that already passed validLine.
// lineno is carried only for error reporting.
func decode(line string, lineno int, strict bool) (*Record, error) {
	c := cursor{s: line}
	rec := &Record{
		Seqname:    c.token(),
		Source:     c.token(),
		Feature:    c.token(),
		Attributes: make(map[string]string),
	}

	start, err := strconv.ParseUint(c.token(), 10, 64)
	if err != nil {
		return nil, errFieldRange
	}
	end, err := strconv.ParseUint(c.token(), 10, 64)
	if err != nil {
		return nil, errFieldRange
	}
	rec.Start, rec.End = start, end

	score := c.token()
	switch v, err := strconv.ParseFloat(score, 64); {
	case score == ".":
		rec.Score = NoScore
	case err == nil:
		rec.Score = v
	case strict:
		return nil, &ScoreError{Line: lineno, Text: score, Err: err}
	}
	// Permissive default: an unparsable score decodes to 0.

	if s := c.token(); s != "" {
		rec.Strand = s[0]
	}

	rec.Frame = NoFrame
	if f, err := strconv.ParseInt(c.token(), 10, 8); err == nil && f >= 0 {
		rec.Frame = int8(f)
	}

	// Attribute pairs: token key, then raw tail up to ';'. Duplicate keys
	// collapse last-write-wins. A key with no value (end of line, no
	// semicolon) still lands in the map with an empty value.
	for {
		key := c.token()
		if key == "" {
			break
		}
		rec.Attributes[key] = sanitizeAttrValue(c.untilSemi())
	}
	return rec, nil
}
