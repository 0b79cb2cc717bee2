// Package gtf decodes GTF (Gene Transfer Format) annotation files: one
// tab-delimited record per line, eight fixed fields followed by
// semicolon-terminated key "value" attribute pairs.
//
// Parsing is permissive the way annotation consumers expect: comments
// ('#' to end of line), blank lines, and lines that fail the record grammar
// are skipped, never aborting the stream. The unit of failure isolation is
// exactly one line; no partial record is ever produced.
//
// Two entry points:
//   - Reader pulls records lazily from any io.Reader; io.EOF terminates.
//   - Load reads a whole file (gzip and "-" stdin aware) into a File for
//     counting, iteration, and batch filtering.
package gtf
