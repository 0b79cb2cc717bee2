// internal/output/types.go
package output

import "gtfq-core/gtf"

// FileRecord pairs a decoded record with the file it came from, which is
// the unit every writer consumes.
type FileRecord struct {
	File string
	Rec  gtf.Record
}
