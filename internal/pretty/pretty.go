package pretty

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gtfq-core/gtf"
)

const (
	linePrefix = "# "
	attrIndent = "  "
)

// RenderRecord prints the readable block gtfq appends under a text row:
// a location summary line carrying all eight columns, one "key: value"
// line per attribute (keys sorted), and a closing spacer. Every line
// starts with '#' so the blocks survive being interleaved with TSV rows.
func RenderRecord(r gtf.Record) string {
	var b strings.Builder

	strand := "."
	if r.Strand != 0 {
		strand = string(r.Strand)
	}

	fmt.Fprintf(&b, "%s%s:%d-%d %s (%s) %s",
		linePrefix, r.Seqname, r.Start, r.End, r.Feature, strand, r.Source)
	if r.HasScore() {
		fmt.Fprintf(&b, " score=%s", strconv.FormatFloat(r.Score, 'g', -1, 64))
	}
	if r.HasFrame() {
		fmt.Fprintf(&b, " frame=%d", r.Frame)
	}
	b.WriteByte('\n')

	if len(r.Attributes) > 0 {
		keys := make([]string, 0, len(r.Attributes))
		for k := range r.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s%s%s: %s\n", linePrefix, attrIndent, k, r.Attributes[k])
		}
	}

	b.WriteString("#\n")
	return b.String()
}
