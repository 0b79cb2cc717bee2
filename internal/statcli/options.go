// internal/statcli/options.go
package statcli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"gtfq/internal/clibase"
	"gtfq/internal/cliutil"
	"gtfq/internal/stats"
)

// Outputs is the allowed --output set for gtfq-stat.
var Outputs = []string{"text", "json"}

// Options holds all CLI flags and arguments for the summary tool.
type Options struct {
	clibase.Common

	// Aggregation
	By string

	// Performance
	Threads int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] annotations1.gtf annotations2.gtf.gz\n", name)

		_, _ = fmt.Fprintln(out, "\nSummary:")
		_, _ = fmt.Fprintln(out, "  One row per input file (record count, distinct seqnames, tallies),")
		_, _ = fmt.Fprintln(out, "  then the merged cross-file table. Files are scanned concurrently.")

		_, _ = fmt.Fprintln(out, "\nAggregation:")
		_, _ = fmt.Fprintf(out, "  -b, --by string             Tally dimension: %s [%s]\n",
			strings.Join(stats.Dimensions, " | "), def("by"))

		_, _ = fmt.Fprintln(out, "\nPerformance:")
		_, _ = fmt.Fprintf(out, "  -t, --threads int           Files scanned in parallel (0=all CPUs) [%s]\n", def("threads"))
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("gtfq-stat"), nil) }

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.StringVar(&o.By, "by", "feature", "tally dimension [feature]")
	fs.StringVar(&o.By, "b", "feature", "alias of --by")

	fs.IntVar(&o.Threads, "threads", 0, "files scanned in parallel (0=all CPUs) [0]")
	fs.IntVar(&o.Threads, "t", 0, "alias of --threads")

	fs.BoolVar(&help, "h", false, "show this help [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if err := clibase.AfterParse(fs, &c, noHeader, posArgs, Outputs...); err != nil {
		return o, err
	}
	if !validDimension(o.By) {
		return o, fmt.Errorf("invalid --by %q (want %s)", o.By, strings.Join(stats.Dimensions, " | "))
	}
	if o.Threads < 0 {
		return o, errors.New("--threads must be >= 0")
	}

	o.Common = c
	return o, nil
}

func validDimension(by string) bool {
	for _, d := range stats.Dimensions {
		if by == d {
			return true
		}
	}
	return false
}
