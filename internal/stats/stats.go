// internal/stats/stats.go
package stats

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"gtfq-core/gtf"
	"gtfq/internal/scan"
)

// Dimensions are the record fields gtfq-stat can tally by.
var Dimensions = []string{"feature", "source", "seqname", "strand"}

// Summary is one file's annotation profile. Tallies is keyed by the chosen
// dimension (feature type by default).
type Summary struct {
	File     string
	Records  int
	Seqnames int
	Tallies  map[string]int
}

// KeyCount is one row of the merged cross-file table.
type KeyCount struct {
	Key     string
	Records int
}

func keyFunc(by string) func(*gtf.Record) string {
	switch by {
	case "source":
		return func(r *gtf.Record) string { return r.Source }
	case "seqname":
		return func(r *gtf.Record) string { return r.Seqname }
	case "strand":
		return func(r *gtf.Record) string {
			if r.Strand == 0 {
				return "."
			}
			return string(r.Strand)
		}
	default:
		return func(r *gtf.Record) string { return r.Feature }
	}
}

// Collect scans one file and tallies its records by the given dimension.
func Collect(ctx context.Context, path, by string, opts []gtf.Option) (Summary, error) {
	key := keyFunc(by)
	s := Summary{File: path, Tallies: map[string]int{}}
	seqnames := map[string]struct{}{}
	err := scan.ForEachRecord(ctx, []string{path}, opts, func(_ string, rec *gtf.Record) error {
		s.Records++
		s.Tallies[key(rec)]++
		seqnames[rec.Seqname] = struct{}{}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	s.Seqnames = len(seqnames)
	return s, nil
}

// CollectAll scans files concurrently, at most limit at a time (0 = all
// CPUs). Summaries come back in input order regardless of completion order;
// the first failure cancels the remaining scans.
func CollectAll(ctx context.Context, paths []string, by string, opts []gtf.Option, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	out := make([]Summary, len(paths))
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			s, err := Collect(ctx, p, by, opts)
			if err != nil {
				return err
			}
			out[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Merge folds per-file tallies into one table, ordered by count descending
// and key ascending on ties, so equal inputs always render the same bytes.
func Merge(sums []Summary) []KeyCount {
	total := map[string]int{}
	for _, s := range sums {
		for k, n := range s.Tallies {
			total[k] += n
		}
	}
	out := make([]KeyCount, 0, len(total))
	for k, n := range total {
		out = append(out, KeyCount{Key: k, Records: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Records != out[j].Records {
			return out[i].Records > out[j].Records
		}
		return out[i].Key < out[j].Key
	})
	return out
}
