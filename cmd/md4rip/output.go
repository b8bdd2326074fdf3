package main

import (
	"bufio"
	"encoding/hex"
	"hash"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/md4"

	"github.com/stamp711/md4rip"
)

const bufSize = 32 << 10

// distinct rejects any two of the paths naming the same file.
func distinct(paths ...string) error {
	seen := make(map[string]string, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return errors.Wrapf(err, "resolving %q", p)
		}
		if prev, ok := seen[abs]; ok {
			return errors.Errorf("%q and %q are the same file", prev, p)
		}
		seen[abs] = p
	}
	return nil
}

// readPrefix feeds the first offset bytes of the named file to a new Builder.
func readPrefix(path string, offset int64) (*md4rip.Builder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if fi.IsDir() {
		return nil, errors.Errorf("%s is a directory", path)
	}
	if offset > fi.Size() {
		return nil, errors.New("offset is larger than file size")
	}

	b := md4rip.NewBuilder()
	if _, err := io.CopyN(b, bufio.NewReaderSize(f, bufSize), offset); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return b, nil
}

// writeOutput writes a copy of input to output with padding and block
// written over it at offset. The file grows if the written bytes run past the
// end of input.
func writeOutput(output, input string, offset int64, padding, block []byte) (err error) {
	in, err := os.Open(input)
	if err != nil {
		return errors.WithStack(err)
	}
	defer in.Close()

	out, err := os.OpenFile(output, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = errors.WithStack(cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrapf(err, "copying %s to %s", input, output)
	}

	patch := make([]byte, 0, len(padding)+len(block))
	patch = append(append(patch, padding...), block...)
	if _, err := out.WriteAt(patch, offset); err != nil {
		return errors.Wrapf(err, "writing collision to %s", output)
	}
	return nil
}

func md4File(path string) (string, error)    { return sumFile(path, md4.New()) }
func blake3File(path string) (string, error) { return sumFile(path, blake3.New()) }

// sumFile returns the hex digest of the named file under h.
func sumFile(path string, h hash.Hash) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer f.Close()

	if _, err := io.Copy(h, bufio.NewReaderSize(f, bufSize)); err != nil {
		return "", errors.Wrapf(err, "hashing %s", path)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
