// internal/statapp/app.go
package statapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"gtfq/internal/appcore"
	"gtfq/internal/clibase"
	"gtfq/internal/cliutil"
	"gtfq/internal/cmdutil"
	"gtfq/internal/config"
	"gtfq/internal/statcli"
	"gtfq/internal/statoutput"
	"gtfq/internal/stats"
	"gtfq/internal/version"
	"gtfq/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := statcli.NewFlagSet("gtfq-stat")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = statcli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.FlushExit(outw, stderr, 0)
	}

	opts, err := statcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
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
		fmt.Fprintf(outw, "gtfq-stat version %s\n", version.Version)
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
		config.Apply(def, cliutil.SetFlags(fs), &opts.Common, statcli.Outputs...)
	}

	if err := clibase.RequireInput(&opts.Common); err != nil {
		fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.FlushExit(outw, stderr, 2)
	}

	ropts := appcore.ReaderOptions(appcore.Options{StrictScores: opts.StrictScores})

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sums, err := stats.CollectAll(ctx, opts.Files, opts.By, ropts, opts.Threads)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 3
	}
	merged := stats.Merge(sums)

	var werr error
	switch opts.Output {
	case "json":
		werr = statoutput.WriteJSON(outw, statoutput.Report(opts.By, sums, merged))
	default:
		werr = statoutput.WriteText(outw, opts.By, sums, merged, opts.Header)
	}
	if writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}

	// An empty summary is still a valid summary; zero records exit 0.
	return appcore.FlushExit(outw, stderr, 0)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
