// internal/scan/scan.go
package scan

import (
	"context"
	"fmt"
	"io"

	"gtfq-core/gtf"
)

// ForEachRecord walks paths in order, invoking fn for every decoded record.
// Cancellation is checked between records so huge inputs stop promptly.
// Errors from fn abort the walk unchanged; stream errors gain the offending
// path as context.
func ForEachRecord(ctx context.Context, paths []string, opts []gtf.Option, fn func(file string, rec *gtf.Record) error) error {
	for _, p := range paths {
		if err := walkFile(ctx, p, opts, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkFile(ctx context.Context, path string, opts []gtf.Option, fn func(string, *gtf.Record) error) error {
	r, err := gtf.Open(path, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := fn(path, rec); err != nil {
			return err
		}
	}
}
