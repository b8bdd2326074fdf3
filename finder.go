package md4rip

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/stamp711/md4rip/internal/step"
	"github.com/stamp711/md4rip/internal/utils"
)

// Collision is a pair of distinct blocks that compress to the same state
// from Init.
type Collision struct {
	Init   State
	Block1 [BlockSize]byte
	Block2 [BlockSize]byte
}

// Output returns the state both blocks compress to from Init.
func (c *Collision) Output() State { return c.Init.Compress(&c.Block1) }

// Verify recomputes both compressions and reports whether they agree.
func (c *Collision) Verify() bool {
	return c.Block1 != c.Block2 && c.Init.Compress(&c.Block1) == c.Init.Compress(&c.Block2)
}

// Finder searches for a collision from a fixed initial state. A Finder is
// not safe for concurrent use; run one per goroutine.
type Finder struct {
	init   State
	state  State
	data   [16]uint32
	rand   io.Reader
	buf    [BlockSize]byte
	trials uint64
}

// NewFinder returns a Finder that attacks init, drawing candidate messages
// from rand.
func NewFinder(init State, rand io.Reader) *Finder {
	return &Finder{init: init, rand: rand}
}

// Trials returns the number of trials run so far.
func (f *Finder) Trials() uint64 { return f.trials }

// Find runs trials until one verifies. ctx is only consulted between trials.
func (f *Finder) Find(ctx context.Context) (Collision, error) {
	for {
		col, ok, err := f.FindOnce()
		if err != nil || ok {
			return col, err
		}
		if err := ctx.Err(); err != nil {
			return Collision{}, errors.WithStack(err)
		}
	}
}

// FindOnce runs a single trial. It reports false if the candidate pair did
// not collide; the only error is a failure to read randomness.
func (f *Finder) FindOnce() (col Collision, ok bool, err error) {
	if err := f.generate(); err != nil {
		return Collision{}, false, err
	}
	f.trials++

	f.round1()
	f.correctA5()
	f.correctD5()

	col.Init = f.init
	utils.WordsToBytes(&f.data, &col.Block1)

	sibling := f.data
	differential(&sibling)
	utils.WordsToBytes(&sibling, &col.Block2)

	return col, f.init.Compress(&col.Block1) == f.init.Compress(&col.Block2), nil
}

func (f *Finder) generate() error {
	f.state = f.init
	if _, err := io.ReadFull(f.rand, f.buf[:]); err != nil {
		return errors.Wrap(err, "md4rip: reading random message")
	}
	utils.BytesToWords(&f.buf, &f.data)
	return nil
}

// differential turns the first message of a pair into the second.
func differential(m *[16]uint32) {
	m[1] += 1 << 31
	m[2] += 1<<31 - 1<<28
	m[12] -= 1 << 16
}

//
// round 1: single-step modification
//

var (
	round1Shift  = [4]int{3, 7, 11, 19}
	round1Target = [4]int{0, 3, 2, 1}
)

func (f *Finder) round1() {
	for i := 0; i < 16; i++ {
		f.singleStep(i)
	}
}

// singleStep computes the register written by step i, forces its conditions
// and solves for the message word that produces the forced value.
func (f *Finder) singleStep(i int) {
	t, s := round1Target[i%4], round1Shift[i%4]
	a, b, c, d := f.state[t], f.state[(t+1)%4], f.state[(t+2)%4], f.state[(t+3)%4]

	v := step.Op1(a, b, c, d, f.data[i], s)
	for _, cn := range round1[i] {
		v = cn.apply(v, b)
	}

	f.data[i] = step.Inv1(v, s, a, b, c, d)
	f.state[t] = v
}

//
// round 2: multi-message modification
//

// correctA5 forces the a5 conditions through m0 and then adjusts m1..m4 so
// that d1, c1, b1 and a2 keep their values under the new a1.
func (f *Finder) correctA5() {
	st := &f.state

	a5 := step.Op2(st[0], st[1], st[2], st[3], f.data[0], 3)
	for _, cn := range roundA5 {
		a5 = cn.apply(a5, st)
	}
	m0 := step.Inv2(a5, 3, st[0], st[1], st[2], st[3])

	a0, b0, c0, d0 := f.init[0], f.init[1], f.init[2], f.init[3]
	a1 := step.Op1(a0, b0, c0, d0, f.data[0], 3)
	d1 := step.Op1(d0, a1, b0, c0, f.data[1], 7)
	c1 := step.Op1(c0, d1, a1, b0, f.data[2], 11)
	b1 := step.Op1(b0, c1, d1, a1, f.data[3], 19)
	a2 := step.Op1(a1, b1, c1, d1, f.data[4], 3)

	na1 := step.Op1(a0, b0, c0, d0, m0, 3)

	f.data[0] = m0
	f.data[1] = step.Inv1(d1, 7, d0, na1, b0, c0)
	f.data[2] = step.Inv1(c1, 11, c0, d1, na1, b0)
	f.data[3] = step.Inv1(b1, 19, b0, c1, d1, na1)
	f.data[4] = step.Inv1(a2, 3, na1, b1, c1, d1)

	st[0] = a5
}

// correctD5 forces the d5 conditions through m4 and then adjusts m5..m8 so
// that d2, c2, b2 and a3 keep their values under the new a2. The new a2 is
// free, so conditions on a2 may be lost.
func (f *Finder) correctD5() {
	st := &f.state

	d5 := step.Op2(st[3], st[0], st[1], st[2], f.data[4], 5)
	for _, cn := range roundD5 {
		d5 = cn.apply(d5, st)
	}
	m4 := step.Inv2(d5, 5, st[3], st[0], st[1], st[2])

	a0, b0, c0, d0 := f.init[0], f.init[1], f.init[2], f.init[3]
	a1 := step.Op1(a0, b0, c0, d0, f.data[0], 3)
	d1 := step.Op1(d0, a1, b0, c0, f.data[1], 7)
	c1 := step.Op1(c0, d1, a1, b0, f.data[2], 11)
	b1 := step.Op1(b0, c1, d1, a1, f.data[3], 19)
	a2 := step.Op1(a1, b1, c1, d1, f.data[4], 3)
	d2 := step.Op1(d1, a2, b1, c1, f.data[5], 7)
	c2 := step.Op1(c1, d2, a2, b1, f.data[6], 11)
	b2 := step.Op1(b1, c2, d2, a2, f.data[7], 19)
	a3 := step.Op1(a2, b2, c2, d2, f.data[8], 3)

	na2 := step.Op1(a1, b1, c1, d1, m4, 3)

	f.data[4] = m4
	f.data[5] = step.Inv1(d2, 7, d1, na2, b1, c1)
	f.data[6] = step.Inv1(c2, 11, c1, d2, na2, b1)
	f.data[7] = step.Inv1(b2, 19, b1, c2, d2, na2)
	f.data[8] = step.Inv1(a3, 3, na2, b2, c2, d2)

	st[3] = d5
}
