// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"gtfq/internal/jsonlutil"
	"gtfq/internal/output"
)

// StartRecordJSONLWriter streams each matched record as one JSON line (v1).
func StartRecordJSONLWriter(out io.Writer, bufSize int) (chan<- output.FileRecord, <-chan error) {
	return jsonlutil.Start[output.FileRecord](out, bufSize,
		func(enc *json.Encoder, fr output.FileRecord) error {
			return enc.Encode(output.ToAPIRecord(fr))
		},
		IsBrokenPipe,
	)
}
