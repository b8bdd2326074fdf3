package main

import (
	"io"
	"runtime"
	"time"

	"github.com/spf13/pflag"
)

type options struct {
	help, quiet, noCodes bool
	workers              int
	timeout              time.Duration
	maxTrials            uint64
}

// newFlags registers every flag on a fresh set. Help is hoisted to the top
// and the rest are kept in registration order.
func newFlags(opts *options, output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("md4rip", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false

	fs.BoolVarP(&opts.help, "help", "h", false,
		"print this help menu"+n)

	fs.IntVarP(&opts.workers, "workers", "w", runtime.NumCPU(),
		"number of searches to run in parallel")

	fs.DurationVarP(&opts.timeout, "timeout", "t", 0,
		"give up after this long"+n+"(default no limit)")

	fs.Uint64VarP(&opts.maxTrials, "max-trials", "n", 0,
		"give up after this many trials over all workers"+n+"(default no limit)")

	fs.BoolVar(&opts.noCodes, "no-codes", false,
		"print to console w/o formatting codes or simplified"+n+"filepaths")

	fs.BoolVar(&opts.quiet, "quiet", false,
		"print ONLY the output digests or breaking errors"+n+"(enables --no-codes)")

	return fs
}

func parseFlags(args []string, output io.Writer) (options, *pflag.FlagSet, error) {
	var opts options
	fs := newFlags(&opts, output)
	err := fs.Parse(args)
	if opts.quiet {
		opts.noCodes = true
	}
	return opts, fs, err
}
