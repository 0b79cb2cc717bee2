package gtf

import "regexp"

// validLineRE is the record grammar: eight tab-separated non-blank fields,
// with digit-only start and end columns, optionally followed by repeated
// whitespace-separated `key value;` attribute groups. The pattern is
// anchored at the start only; trailing text past the last matched group
// never disqualifies a line (the decoder deals with it). Compiled once and
// shared read-only by every Reader.
var validLineRE = regexp.MustCompile(`^\S+\t\S+\t\S+\t\d+\t\d+\t\S+\t\S+\t\S+([ \t]\S+[ \t]\S+;)*`)

// validLine reports whether a sanitized line has the minimal shape of a GTF
// record. Blank lines and comment remnants fail here and get skipped.
func validLine(line string) bool { return validLineRE.MatchString(line) }
