// internal/output/json.go
package output

import (
	"io"

	"gtfq/internal/jsonutil"
	"gtfq/pkg/api"
)

// ToAPIRecord converts a record to the stable wire schema (v1). Sentinel
// score and frame values become absent fields rather than magic numbers.
func ToAPIRecord(fr FileRecord) api.RecordV1 {
	r := &fr.Rec
	v := api.RecordV1{
		SourceFile: fr.File,
		Seqname:    r.Seqname,
		Source:     r.Source,
		Feature:    r.Feature,
		Start:      r.Start,
		End:        r.End,
		Strand:     StrandField(r),
	}
	if r.HasScore() {
		score := r.Score
		v.Score = &score
	}
	if r.HasFrame() {
		frame := int(r.Frame)
		v.Frame = &frame
	}
	if len(r.Attributes) > 0 {
		v.Attributes = make(map[string]string, len(r.Attributes))
		for k, val := range r.Attributes {
			v.Attributes[k] = val
		}
	}
	return v
}

func toAPIRecords(list []FileRecord) []api.RecordV1 {
	out := make([]api.RecordV1, 0, len(list))
	for _, fr := range list {
		out = append(out, ToAPIRecord(fr))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 records (pretty-indented).
func WriteJSON(w io.Writer, list []FileRecord) error {
	return jsonutil.EncodePrettyList(w, toAPIRecords(list))
}
