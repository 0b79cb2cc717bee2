// internal/statoutput/statoutput.go
package statoutput

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"gtfq/internal/jsonutil"
	"gtfq/internal/stats"
	"gtfq/pkg/api"
)

// FilesTSVHeader is the header row of the per-file table.
const FilesTSVHeader = "file\trecords\tseqnames\ttallies"

// talliesCSV flattens one file's tallies into "CDS=3,exon=8", keys sorted
// for stable rendering.
func talliesCSV(m map[string]int) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + strconv.Itoa(m[k])
	}
	return strings.Join(parts, ",")
}

// FormatSummaryRowTSV returns one file's row (no trailing newline).
func FormatSummaryRowTSV(s stats.Summary) string {
	return fmt.Sprintf("%s\t%d\t%d\t%s", s.File, s.Records, s.Seqnames, talliesCSV(s.Tallies))
}

// WriteText prints the per-file table, a blank line, then the merged
// cross-file table whose first column carries the dimension name.
func WriteText(w io.Writer, by string, files []stats.Summary, merged []stats.KeyCount, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, FilesTSVHeader); err != nil {
			return err
		}
	}
	for _, s := range files {
		if _, err := fmt.Fprintln(w, FormatSummaryRowTSV(s)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if header {
		if _, err := fmt.Fprintf(w, "%s\trecords\n", by); err != nil {
			return err
		}
	}
	for _, kc := range merged {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", kc.Key, kc.Records); err != nil {
			return err
		}
	}
	return nil
}

// ToAPISummary converts a summary to the stable wire schema (v1).
func ToAPISummary(s stats.Summary) api.FileSummaryV1 {
	v := api.FileSummaryV1{
		File:     s.File,
		Records:  s.Records,
		Seqnames: s.Seqnames,
	}
	if len(s.Tallies) > 0 {
		v.Tallies = make(map[string]int, len(s.Tallies))
		for k, n := range s.Tallies {
			v.Tallies[k] = n
		}
	}
	return v
}

// Report assembles the v1 report. Tallies and Files are never nil; the
// wire schema always hands consumers arrays.
func Report(by string, files []stats.Summary, merged []stats.KeyCount) api.StatReportV1 {
	rep := api.StatReportV1{
		By:      by,
		Tallies: make([]api.KeyCountV1, 0, len(merged)),
		Files:   make([]api.FileSummaryV1, 0, len(files)),
	}
	for _, kc := range merged {
		rep.Tallies = append(rep.Tallies, api.KeyCountV1{Key: kc.Key, Records: kc.Records})
	}
	for _, s := range files {
		rep.Files = append(rep.Files, ToAPISummary(s))
	}
	return rep
}

// WriteJSON writes the report as one pretty-indented JSON object.
func WriteJSON(w io.Writer, rep api.StatReportV1) error {
	return jsonutil.EncodePretty(w, rep)
}
