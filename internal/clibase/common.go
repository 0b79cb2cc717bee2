// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"gtfq/internal/cliutil"
)

// Common holds CLI fields shared by gtfq and gtfq-stat.
type Common struct {
	// Input
	Files []string // annotation files, '-' for stdin

	// Parsing
	StrictScores bool

	// Output
	Output string // per-tool subset of text|json|jsonl
	Header bool

	// Misc
	Quiet   bool
	Version bool
}

// Register wires shared flags onto fs and returns a pointer to the "no-header"
// bool that the caller uses to set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	// Input
	files := (*stringSlice)(&c.Files)
	fs.Var(files, "input", "GTF file(s) (repeatable or '-') [*]")
	fs.Var(files, "i", "alias of --input")

	// Parsing
	fs.BoolVar(&c.StrictScores, "strict-scores", false, "fail on score columns that are neither '.' nor numeric [false]")

	// Output
	fs.StringVar(&c.Output, "output", "text", "output format [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// AfterParse finalizes header and expands positionals into Files, then runs
// shared validation. outputs is the tool's allowed --output set.
func AfterParse(fs *flag.FlagSet, c *Common, noHeader *bool, posArgs []string, outputs ...string) error {
	c.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.Files = append(c.Files, exp...)
	}
	return Validate(c, outputs...)
}

// Validate applies shared CLI invariants used by both tools. Whether any
// input was named at all is checked later, after the defaults file had its
// chance to supply one (RequireInput).
func Validate(c *Common, outputs ...string) error {
	for _, f := range c.Files {
		if f == "" {
			return errors.New("empty input path")
		}
	}
	valid := false
	for _, f := range outputs {
		if c.Output == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	return nil
}

// RequireInput is the deferred half of input validation: by the time it
// runs, flags, positionals, and the defaults-file annotation have all had
// their say.
func RequireInput(c *Common) error {
	if len(c.Files) == 0 {
		return errors.New("at least one annotation file is required (or '-' for stdin)")
	}
	return nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
