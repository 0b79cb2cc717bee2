// pkg/api/records_v1.go
package api

// RecordV1 is the stable JSON/JSONL schema for GTF records.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	SourceFile string            `json:"source_file,omitempty"`
	Seqname    string            `json:"seqname"`
	Source     string            `json:"source"`
	Feature    string            `json:"feature"`
	Start      uint64            `json:"start"`
	End        uint64            `json:"end"`
	Score      *float64          `json:"score,omitempty"` // absent when the column was "."
	Strand     string            `json:"strand"`          // "+" | "-" | "."
	Frame      *int              `json:"frame,omitempty"` // absent when the column was "."
	Attributes map[string]string `json:"attributes,omitempty"`
}
