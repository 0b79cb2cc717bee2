// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gtfq/internal/clibase"
	"gtfq/internal/cliutil"
)

// Outputs is the allowed --output set for gtfq.
var Outputs = []string{"text", "json", "jsonl"}

// Options holds all CLI flags and arguments for the filter tool.
type Options struct {
	clibase.Common

	// Filters (empty = match everything)
	Seqname   string
	Source    string
	Feature   string
	Strand    string
	Attrs     []string // key=value pairs, all must match
	WithAttrs []string // keys that must be present
	WithScore bool
	MinScore  *float64
	MaxScore  *float64

	// Output extras
	Count  bool
	Pretty bool

	NoMatchExitCode int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] -f exon annotations.gtf.gz\n", name)

		_, _ = fmt.Fprintln(out, "\nFilters:")
		_, _ = fmt.Fprintln(out, "  -f, --feature string        Keep records with this feature type (gene, exon, CDS, ...)")
		_, _ = fmt.Fprintln(out, "  -c, --seqname string        Keep records on this seqname/chromosome")
		_, _ = fmt.Fprintln(out, "      --source string         Keep records from this source")
		_, _ = fmt.Fprintln(out, "      --strand string         Keep records on this strand: + | - | .")
		_, _ = fmt.Fprintln(out, "  -a, --attr key=value        Keep records whose attribute equals value (repeatable)")
		_, _ = fmt.Fprintln(out, "      --with-attr key         Keep records that carry the attribute key (repeatable)")
		_, _ = fmt.Fprintln(out, "      --with-score            Keep records whose score column is not '.'")
		_, _ = fmt.Fprintln(out, "      --min-score float       Keep records with score >= float (records without score drop)")
		_, _ = fmt.Fprintln(out, "      --max-score float       Keep records with score <= float (records without score drop)")

		_, _ = fmt.Fprintln(out, "\nFormats:")
		_, _ = fmt.Fprintln(out, "      text                    One TSV row per record (default)")
		_, _ = fmt.Fprintln(out, "      json | jsonl            Stable v1 schema, array or one object per line")
		_, _ = fmt.Fprintf(out, "      --count                 Print only the number of matching records [%s]\n", def("count"))
		_, _ = fmt.Fprintf(out, "      --pretty                Append a readable record block under each text row [%s]\n", def("pretty"))

		_, _ = fmt.Fprintln(out, "\nExit:")
		_, _ = fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no records match [%s]\n", def("no-match-exit-code"))
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("gtfq"), nil) }

// PrintExamples prints a tiny, focused quickstart for gtfq.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "gtfq", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Filter GTF annotations by feature, location and attributes.")
		_, _ = fmt.Fprintln(w, "\nExamples:")
		_, _ = fmt.Fprintln(w, "  gtfq -f exon annotations.gtf")
		_, _ = fmt.Fprintln(w, "  gtfq -c chr1 --with-attr gene_name --output jsonl annotations.gtf.gz")
		_, _ = fmt.Fprintln(w, "  zcat big.gtf.gz | gtfq -a 'gene_id=ENSG00000223972' --count -")
	})
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool
	var minScore, maxScore string

	// Shared flags via clibase
	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	// Filter flags
	fs.StringVar(&o.Feature, "feature", "", "feature type to keep")
	fs.StringVar(&o.Feature, "f", "", "alias of --feature")
	fs.StringVar(&o.Seqname, "seqname", "", "seqname/chromosome to keep")
	fs.StringVar(&o.Seqname, "c", "", "alias of --seqname")
	fs.StringVar(&o.Source, "source", "", "source to keep")
	fs.StringVar(&o.Strand, "strand", "", "strand to keep: + | - | .")
	attrs := &sliceValue{dst: &o.Attrs}
	fs.Var(attrs, "attr", "attribute key=value to require (repeatable)")
	fs.Var(attrs, "a", "alias of --attr")
	fs.Var(&sliceValue{dst: &o.WithAttrs}, "with-attr", "attribute key to require (repeatable)")
	fs.BoolVar(&o.WithScore, "with-score", false, "keep only records that carry a score [false]")
	fs.StringVar(&minScore, "min-score", "", "minimum score to keep")
	fs.StringVar(&maxScore, "max-score", "", "maximum score to keep")

	// Output extras
	fs.BoolVar(&o.Count, "count", false, "print only the match count [false]")
	fs.BoolVar(&o.Pretty, "pretty", false, "readable record block under each text row [false]")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no records match [1]")

	// Help / examples
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	// Split & parse
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	// Finalize header, expand positionals, shared validation
	if err := clibase.AfterParse(fs, &c, noHeader, posArgs, Outputs...); err != nil {
		return o, err
	}

	// Filter-specific validation
	switch o.Strand {
	case "", "+", "-", ".":
	default:
		return o, fmt.Errorf("invalid --strand %q (want + | - | .)", o.Strand)
	}
	for _, a := range o.Attrs {
		if k, _, ok := strings.Cut(a, "="); !ok || k == "" {
			return o, fmt.Errorf("invalid --attr %q (want key=value)", a)
		}
	}
	var err error
	if o.MinScore, err = parseScoreBound("min-score", minScore); err != nil {
		return o, err
	}
	if o.MaxScore, err = parseScoreBound("max-score", maxScore); err != nil {
		return o, err
	}
	if o.MinScore != nil && o.MaxScore != nil && *o.MinScore > *o.MaxScore {
		return o, fmt.Errorf("--min-score (%g) exceeds --max-score (%g)", *o.MinScore, *o.MaxScore)
	}
	if o.Count && o.Pretty {
		return o, fmt.Errorf("--count conflicts with --pretty")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return o, fmt.Errorf("--no-match-exit-code must be between 0 and 255")
	}

	// Embed shared options
	o.Common = c
	return o, nil
}

func parseScoreBound(name, s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q", name, s)
	}
	return &v, nil
}

// sliceValue appends each value to a *[]string (for repeatable flags).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}
