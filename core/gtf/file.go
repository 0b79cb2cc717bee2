package gtf

import "fmt"

// File is an annotation file loaded eagerly into memory, records in input
// order.
type File struct {
	Path    string
	Records []Record
}

// Open resolves path (stdin and gzip rules as in Load) and returns a
// streaming Reader over it. The caller must Close the Reader when done.
func Open(path string, opts ...Option) (*Reader, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, fmt.Errorf("open gtf %s: %w", path, err)
	}
	r := NewReader(rc, opts...)
	r.c = rc
	return r, nil
}

// Load opens path and decodes every valid record into a File. An unreadable
// path is an error; a readable file with zero valid records is simply an
// empty File, the two cases stay distinguishable.
func Load(path string, opts ...Option) (*File, error) {
	r, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("load gtf %s: %w", path, err)
	}
	return &File{Path: path, Records: recs}, nil
}

// Count returns the number of records loaded.
func (f *File) Count() int { return len(f.Records) }

// Filter returns the records keep accepts, preserving input order.
func (f *File) Filter(keep func(*Record) bool) []Record {
	return Filter(f.Records, keep)
}
