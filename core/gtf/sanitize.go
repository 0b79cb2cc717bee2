package gtf

import "strings"

// sanitizeLine strips a trailing comment (everything from the first '#' to
// end of line) and trims horizontal whitespace from both ends. A '#' inside
// a quoted attribute value is not protected; it still starts a comment.
func sanitizeLine(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.Trim(line, " \t")
}

// sanitizeAttrValue trims horizontal whitespace, then strips at most one
// leading and one trailing double quote. Deeper quoting survives untouched:
// ""x"" sanitizes to "x", not x.
func sanitizeAttrValue(v string) string {
	v = strings.Trim(v, " \t")
	v = strings.TrimPrefix(v, `"`)
	return strings.TrimSuffix(v, `"`)
}
