// pkg/api/summary_v1.go
package api

// StatReportV1 is the stable schema for gtfq-stat JSON output: the merged
// cross-file table plus one entry per input file.
type StatReportV1 struct {
	By      string          `json:"by"`
	Tallies []KeyCountV1    `json:"tallies"`
	Files   []FileSummaryV1 `json:"files"`
}

// KeyCountV1 is one merged table row; order in StatReportV1.Tallies is
// count descending, key ascending on ties.
type KeyCountV1 struct {
	Key     string `json:"key"`
	Records int    `json:"records"`
}

// FileSummaryV1 is one input file's profile. Tallies is keyed by the
// report's By dimension.
type FileSummaryV1 struct {
	File     string         `json:"file"`
	Records  int            `json:"records"`
	Seqnames int            `json:"seqnames"`
	Tallies  map[string]int `json:"tallies,omitempty"`
}
