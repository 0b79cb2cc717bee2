// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EncodePrettyList writes list as an indented JSON array. A nil slice encodes
// as [] rather than null; a record list on the wire is always an array.
func EncodePrettyList[T any](w io.Writer, list []T) error {
	if list == nil {
		list = []T{}
	}
	return EncodePretty(w, list)
}
