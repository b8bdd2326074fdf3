// Package md4rip builds MD4 collisions after an arbitrary prefix.
//
// A Builder takes the prefix as an io.Writer, zero pads it to a block
// boundary and searches for two blocks that compress to the same chaining
// state from there. The outputs prefix+padding+Block1 and
// prefix+padding+Block2 then have the same MD4 digest, and keep it under any
// common suffix.
//
// MD4 is broken; this package exists to demonstrate that.
package md4rip

import (
	"context"
	"time"
)

// Outcome is the result of a successful Builder.Build.
type Outcome struct {
	Result

	// Padding is the zero padding written after the prefix so the blocks
	// start on a block boundary. It is empty when the prefix already ends
	// on one.
	Padding []byte
}

// Builder accumulates a prefix and builds a collision after it.
type Builder struct {
	buf buffer
	cfg Config
}

// NewBuilder returns a Builder with an empty prefix and a single worker.
func NewBuilder() *Builder {
	return &Builder{buf: newBuffer()}
}

// Write implements io.Writer. It never returns an error.
func (b *Builder) Write(p []byte) (int, error) {
	b.buf.update(p)
	return len(p), nil
}

// WriteString is like Write for a string.
func (b *Builder) WriteString(s string) (int, error) {
	b.buf.update([]byte(s))
	return len(s), nil
}

// Len returns the number of prefix bytes written, modulo 2^64.
func (b *Builder) Len() uint64 { return b.buf.len }

// Reset discards the prefix. The configuration is kept.
func (b *Builder) Reset() { b.buf.reset() }

// SetConfig replaces the search configuration used by Build.
func (b *Builder) SetConfig(cfg Config) { b.cfg = cfg }

// SetTimeout bounds the time Build spends searching. Zero removes the bound.
func (b *Builder) SetTimeout(d time.Duration) { b.cfg.Timeout = d }

// State returns the chaining state the collision will start from, along with
// the padding needed to reach it.
func (b *Builder) State() (State, []byte) { return b.buf.finalize() }

// Build pads the prefix and searches for a collision. Without a timeout or
// trial budget it only returns on success, cancellation of ctx, or failure
// of the randomness source. The prefix is kept, so Build may be called again
// for a different pair.
func (b *Builder) Build(ctx context.Context) (Outcome, error) {
	init, padding := b.buf.finalize()

	res, err := Search(ctx, init, b.cfg)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Result: res, Padding: padding}, nil
}
