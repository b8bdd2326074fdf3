// Command md4rip writes two files that differ in one 64-byte block but share
// an MD4 digest. Both are copies of INPUT with zero padding and a colliding
// block written at OFFSET.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/p7r0x7/vainpath"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/stamp711/md4rip"
	"github.com/stamp711/md4rip/internal/term"
)

const n = "\n"
const success, failure, invalid = 0, 1, 2

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := program(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// help prints a usage menu. To render well in most terminal windows its
// content should be no wider than 80 columns.
func help(w io.Writer, fs *pflag.FlagSet, c term.Codes) {
	origin, err := os.Executable()
	if err != nil {
		origin = "md4rip"
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)

	fmt.Fprint(w, c.Yell, "An MD4 collision generator.", c.Zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-w <int>] [-t <duration>] [-n <uint>] [--quiet|no-codes]"+n,
		spaces, "INPUT OFFSET OUTPUT1 OUTPUT2"+n+n+
			"The first OFFSET bytes of INPUT are the common prefix. Each output is a copy"+n+
			"of INPUT with zero padding and one block of the colliding pair written at"+n+
			"OFFSET."+n+n+
			"Options:"+n)
	fs.PrintDefaults()
}

func program(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return invalid
	}
	c := term.New(!opts.noCodes)

	if opts.help {
		help(stderr, fs, c)
		return success
	}
	if fs.NArg() != 4 {
		help(stderr, fs, c)
		return invalid
	}

	input, output1, output2 := fs.Arg(0), fs.Arg(2), fs.Arg(3)
	offset, err := strconv.ParseInt(fs.Arg(1), 0, 64)
	if err != nil || offset < 0 {
		fmt.Fprint(stderr, c.Purp, "OFFSET must be a non-negative integer.", c.Zero, n)
		return invalid
	}
	if err := distinct(input, output1, output2); err != nil {
		fmt.Fprint(stderr, c.Purp, err, c.Zero, n)
		return invalid
	}

	b, err := readPrefix(input, offset)
	if err != nil {
		fmt.Fprint(stderr, c.Purp, err, c.Zero, n)
		return failure
	}
	b.SetConfig(md4rip.Config{
		Workers:   opts.workers,
		MaxTrials: opts.maxTrials,
		Timeout:   opts.timeout,
	})

	start := time.Now()
	out, err := b.Build(ctx)
	if err != nil {
		fmt.Fprint(stderr, c.Purp, errors.Wrap(err, "no collision found"), c.Zero, n)
		return failure
	}
	delta := time.Since(start).Truncate(time.Millisecond)

	if !opts.quiet {
		fmt.Fprint(stdout, c.Yell, "=> Collision info", c.Zero, n)
		fmt.Fprint(stdout, "Created collision starting at byte offset ", offset, n)
		fmt.Fprint(stdout, "Padding length: ", len(out.Padding), " bytes", n)
		if len(out.Padding) > 0 {
			fmt.Fprintf(stdout, "Padding: %x"+n, out.Padding)
		}
		fmt.Fprintf(stdout, "Message1: %x"+n, out.Block1)
		fmt.Fprintf(stdout, "Message2: %x"+n, out.Block2)
		fmt.Fprint(stdout, "Found after ", out.Trials, " trials (", delta, ")", n)
	}

	for _, o := range [2]struct {
		path  string
		block []byte
	}{{output1, out.Block1[:]}, {output2, out.Block2[:]}} {
		if err := writeOutput(o.path, input, offset, out.Padding, o.block); err != nil {
			fmt.Fprint(stderr, c.Purp, err, c.Zero, n)
			return failure
		}
	}

	return report(stdout, stderr, c, opts, output1, output2)
}

// report prints the digests of both outputs.
func report(stdout, stderr io.Writer, c term.Codes, opts options, output1, output2 string) int {
	var md4s, b3s [2]string
	for i, path := range [2]string{output1, output2} {
		var err error
		if md4s[i], err = md4File(path); err != nil {
			fmt.Fprint(stderr, c.Purp, err, c.Zero, n)
			return failure
		}
		if b3s[i], err = blake3File(path); err != nil {
			fmt.Fprint(stderr, c.Purp, err, c.Zero, n)
			return failure
		}
	}

	show := func(path string) string {
		if opts.noCodes {
			return filepath.Clean(path)
		}
		return c.Und + vainpath.Simplify(path) + c.Zero
	}

	if opts.quiet {
		fmt.Fprint(stdout, md4s[0], "  ", show(output1), n)
		fmt.Fprint(stdout, md4s[1], "  ", show(output2), n)
	} else {
		fmt.Fprint(stdout, c.Yell, "=> Output files", c.Zero, n)
		fmt.Fprint(stdout, "MD4 for ", show(output1), ": ", c.Yell, md4s[0], c.Zero, n)
		fmt.Fprint(stdout, "MD4 for ", show(output2), ": ", c.Yell, md4s[1], c.Zero, n)
		if md4s[0] == md4s[1] {
			fmt.Fprint(stdout, "MD4 digests are identical.", n)
		}
		fmt.Fprint(stdout, "BLAKE3 for ", show(output1), ": ", b3s[0], n)
		fmt.Fprint(stdout, "BLAKE3 for ", show(output2), ": ", b3s[1], n)
	}

	if md4s[0] != md4s[1] {
		fmt.Fprint(stderr, c.Purp, "MD4 digests differ.", c.Zero, n)
		return failure
	}
	return success
}
