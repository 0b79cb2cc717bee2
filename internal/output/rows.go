// internal/output/rows.go
package output

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gtfq-core/gtf"
)

// ScoreField renders the score column: the literal "." for an absent score,
// otherwise the shortest exact decimal form.
func ScoreField(r *gtf.Record) string {
	if !r.HasScore() {
		return "."
	}
	return strconv.FormatFloat(r.Score, 'g', -1, 64)
}

// FrameField renders the frame column, "." for an absent frame.
func FrameField(r *gtf.Record) string {
	if !r.HasFrame() {
		return "."
	}
	return strconv.Itoa(int(r.Frame))
}

// StrandField renders the strand column. A zero byte (hand-built record)
// degrades to ".".
func StrandField(r *gtf.Record) string {
	if r.Strand == 0 {
		return "."
	}
	return string(r.Strand)
}

// AttrsTSV flattens the attribute map into "k=v;k=v", keys sorted so equal
// records always render the same bytes.
func AttrsTSV(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + attrs[k]
	}
	return strings.Join(parts, ";")
}

// FormatRecordRowTSV returns the 10 base columns (no trailing newline).
func FormatRecordRowTSV(fr FileRecord) string {
	r := &fr.Rec
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s",
		fr.File, r.Seqname, r.Source, r.Feature,
		r.Start, r.End,
		ScoreField(r), StrandField(r), FrameField(r),
		AttrsTSV(r.Attributes),
	)
}
