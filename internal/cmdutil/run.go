package cmdutil

import (
	"context"

	"gtfq-core/gtf"
	"gtfq/internal/scan"
)

// RunStream walks every input file, applies a visitor, and streams kept
// outputs via send. It returns the number of kept outputs and the first
// error encountered.
func RunStream[T any](
	ctx context.Context,
	files []string,
	opts []gtf.Option,
	visit func(file string, rec *gtf.Record) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := scan.ForEachRecord(ctx, files, opts, func(file string, rec *gtf.Record) error {
		keep, out, vErr := visit(file, rec)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
