// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"gtfq-core/gtf"
	"gtfq/internal/appcore"
	"gtfq/internal/cli"
	"gtfq/internal/clibase"
	"gtfq/internal/cliutil"
	"gtfq/internal/cmdutil"
	"gtfq/internal/config"
	"gtfq/internal/match"
	"gtfq/internal/output"
	"gtfq/internal/version"
	"gtfq/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("gtfq")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.FlushExit(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw)
			return appcore.FlushExit(outw, stderr, 0)
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return appcore.FlushExit(outw, stderr, 0)
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.FlushExit(outw, stderr, 2)
	}

	if opts.Version {
		fmt.Fprintf(outw, "gtfq version %s\n", version.Version)
		return appcore.FlushExit(outw, stderr, 0)
	}

	// User-level defaults fill flags left unset; explicit flags always win.
	// A defaults file that exists but does not parse is a usage error.
	def, cerr := config.Load()
	switch {
	case errors.Is(cerr, config.ErrMalformed):
		fmt.Fprintln(stderr, cerr)
		return appcore.FlushExit(outw, stderr, 2)
	case cerr != nil:
		cmdutil.Warnf(stderr, opts.Quiet, "%v", cerr)
	default:
		config.Apply(def, cliutil.SetFlags(fs), &opts.Common, cli.Outputs...)
	}

	if err := clibase.RequireInput(&opts.Common); err != nil {
		fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.FlushExit(outw, stderr, 2)
	}

	crit := match.FromFlags(
		opts.Seqname, opts.Source, opts.Feature, opts.Strand,
		opts.Attrs, opts.WithAttrs, opts.WithScore, opts.MinScore, opts.MaxScore,
	)

	coreOpts := appcore.Options{
		Files:           opts.Files,
		StrictScores:    opts.StrictScores,
		Quiet:           opts.Quiet,
		NoMatchExitCode: opts.NoMatchExitCode,
	}

	start := func(out io.Writer, bufSize int) (chan<- output.FileRecord, <-chan error) {
		if opts.Count {
			return writers.StartCountWriter(out, bufSize)
		}
		return writers.StartRecordWriter(out, opts.Output, opts.Header, opts.Pretty, bufSize)
	}

	visit := func(file string, rec *gtf.Record) (bool, output.FileRecord, error) {
		if !crit.Match(rec) {
			return false, output.FileRecord{}, nil
		}
		return true, output.FileRecord{File: file, Rec: *rec}, nil
	}

	return appcore.Run[output.FileRecord](parent, stdout, stderr, coreOpts, visit, start)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
