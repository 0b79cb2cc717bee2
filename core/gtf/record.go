package gtf

import "math"

// NoScore is the Score value of a record whose score column was the literal
// ".". Positive infinity cannot be produced by any finite score in real
// annotation data, so it doubles as the absence sentinel.
var NoScore = math.Inf(1)

// NoFrame is the Frame value of a record whose frame column was not a small
// non-negative integer (usually the literal ".").
const NoFrame int8 = -1

// Record is one decoded GTF line: a genomic feature interval plus its
// attribute map.
//
// Start and End are kept exactly as written (1-based, inclusive, per the
// format convention); no coordinate arithmetic or ordering check is applied.
// Strand is the raw first byte of the strand column, conventionally '+',
// '-' or '.', but never validated beyond non-emptiness.
type Record struct {
	Seqname    string
	Source     string
	Feature    string
	Start      uint64
	End        uint64
	Score      float64 // NoScore when the column was "."
	Strand     byte
	Frame      int8 // parsed column value, 0..2 in well-formed data; NoFrame when absent
	Attributes map[string]string
}

// HasScore reports whether the score column held a number rather than ".".
func (r *Record) HasScore() bool { return !math.IsInf(r.Score, 1) }

// HasFrame reports whether the frame column held a usable frame.
func (r *Record) HasFrame() bool { return r.Frame >= 0 }

// HasAttribute reports whether key appeared in the attribute block.
func (r *Record) HasAttribute(key string) bool {
	_, ok := r.Attributes[key]
	return ok
}

// Attr returns the attribute value for key, or "" when absent. Use
// HasAttribute to distinguish a missing key from an empty value.
func (r *Record) Attr(key string) string { return r.Attributes[key] }
