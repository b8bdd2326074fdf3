// Command md4sum prints the MD4 digest of each file it is given.
package main

import (
	"bufio"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/p7r0x7/vainpath"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/md4"

	"github.com/stamp711/md4rip/internal/term"
)

const n, bufSize = "\n", 32 << 10
const success, failure, invalid = 0, 1, 2

type options struct {
	help, base64, quiet, noCodes bool
}

func main() { os.Exit(program(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)) }

func parseFlags(args []string, output io.Writer) (options, *pflag.FlagSet, error) {
	var opts options
	fs := pflag.NewFlagSet("md4sum", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false

	fs.BoolVarP(&opts.help, "help", "h", false,
		"print this help menu"+n)
	fs.BoolVarP(&opts.base64, "base64", "b", false,
		"render digests in base64 (default hex)")
	fs.BoolVar(&opts.noCodes, "no-codes", false,
		"print to console w/o formatting codes or simplified"+n+"filepaths")
	fs.BoolVar(&opts.quiet, "quiet", false,
		"suppress non-breaking errors and print ONLY digests"+n+"(enables --no-codes)")

	err := fs.Parse(args)
	if opts.quiet {
		opts.noCodes = true
	}
	return opts, fs, err
}

func help(w io.Writer, fs *pflag.FlagSet, c term.Codes) {
	origin, err := os.Executable()
	if err != nil {
		origin = "md4sum"
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)

	fmt.Fprint(w, c.Yell, "Prints MD4 digests.", c.Zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-b] [--quiet|no-codes] -|PATH..."+n+n+
			"Options:"+n)
	fs.PrintDefaults()
	fmt.Fprint(w, n+"`-` is treated as a reference to standard input."+n)
}

func program(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return invalid
	}
	c := term.New(!opts.noCodes)

	if opts.help || fs.NArg() == 0 {
		help(stderr, fs, c)
		return success
	}

	warnings, digest := 0, md4.New()
	for i, target := range fs.Args() {
		if i > 0 {
			digest.Reset()
		}

		if err := hashTarget(digest, target, stdin); err != nil {
			if !opts.quiet {
				fmt.Fprint(stderr, c.Purp, err, c.Zero, n)
			}
			warnings++
			continue
		}
		if target == "-" {
			stdin = eof{} // read at most once
		}

		sum := digest.Sum(nil)
		if opts.base64 {
			fmt.Fprint(stdout, c.Yell, base64.StdEncoding.EncodeToString(sum), c.Zero)
		} else {
			fmt.Fprint(stdout, c.Yell, hex.EncodeToString(sum), c.Zero)
		}

		switch {
		case opts.quiet:
			fmt.Fprint(stdout, n)
		case target == "-":
			fmt.Fprint(stdout, "  -", n)
		case opts.noCodes:
			fmt.Fprint(stdout, "  ", filepath.Clean(target), n)
		default:
			fmt.Fprint(stdout, "  ", c.Und, vainpath.Simplify(target), c.Zero, n)
		}
	}

	if !opts.quiet {
		if warnings == 1 {
			fmt.Fprint(stderr, "1 ", c.Purp, "target is a directory or is otherwise inaccessible.", c.Zero, n)
		} else if warnings > 1 {
			fmt.Fprint(stderr, warnings, " ", c.Purp, "targets are directories or are otherwise inaccessible.", c.Zero, n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

func hashTarget(w io.Writer, target string, stdin io.Reader) error {
	if target == "-" {
		_, err := io.Copy(w, stdin)
		return err
	}

	f, err := os.Open(target)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, bufio.NewReaderSize(f, bufSize))
	return err
}

type eof struct{}

func (eof) Read([]byte) (int, error) { return 0, io.EOF }
