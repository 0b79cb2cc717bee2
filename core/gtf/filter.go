package gtf

// Filter returns the ordered subsequence of records for which keep reports
// true. The input slice is never mutated; matches are copied into a fresh
// slice, so the result stays valid after the source is discarded.
func Filter(records []Record, keep func(*Record) bool) []Record {
	var out []Record
	for i := range records {
		if keep(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}
