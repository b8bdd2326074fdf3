package md4rip

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/pkg/errors"
	"github.com/zeebo/assert"
)

func TestBuilderState(t *testing.T) {
	for _, n := range []int{0, 1, 63, 64, 65, 128, 1000} {
		p := prefix(n)

		b := NewBuilder()
		m, err := b.Write(p)
		assert.NoError(t, err)
		assert.Equal(t, m, n)
		assert.Equal(t, b.Len(), uint64(n))

		state, padding := b.State()
		assert.Equal(t, len(padding), (BlockSize-n%BlockSize)%BlockSize)
		assert.Equal(t, state, fold(IV, append(append([]byte{}, p...), padding...)))
	}
}

func TestBuilderEmpty(t *testing.T) {
	state, padding := NewBuilder().State()
	assert.Equal(t, state, IV)
	assert.Equal(t, len(padding), 0)
}

func TestBuilderReset(t *testing.T) {
	b := NewBuilder()
	_, _ = b.WriteString("some fake wrong data")
	b.Reset()
	_, _ = b.WriteString("abc")

	exp := NewBuilder()
	_, _ = exp.Write([]byte("abc"))

	s1, p1 := b.State()
	s2, p2 := exp.State()
	assert.Equal(t, s1, s2)
	assert.That(t, bytes.Equal(p1, p2))
	assert.Equal(t, b.Len(), uint64(3))
}

func TestBuilderBudget(t *testing.T) {
	b := NewBuilder()
	_, _ = b.WriteString("prefix")
	b.SetConfig(Config{MaxTrials: 1})

	out, err := b.Build(context.Background())
	if err == nil {
		assert.That(t, out.Verify())
		return
	}
	assert.Equal(t, errors.Cause(err), ErrBudgetExhausted)
}

func TestBuild(t *testing.T) {
	if testing.Short() {
		t.SkipNow()
	}

	for _, n := range []int{0, 1, 64, 100, 4096} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			p := prefix(n)

			b := NewBuilder()
			b.SetConfig(Config{Workers: runtime.NumCPU()})
			_, _ = b.Write(p)

			out, err := b.Build(context.Background())
			assert.NoError(t, err)
			assert.That(t, out.Verify())
			assert.Equal(t, len(out.Padding), (BlockSize-n%BlockSize)%BlockSize)

			m1 := append(append(append([]byte{}, p...), out.Padding...), out.Block1[:]...)
			m2 := append(append(append([]byte{}, p...), out.Padding...), out.Block2[:]...)
			assert.That(t, !bytes.Equal(m1, m2))
			assert.Equal(t, fold(IV, m1), fold(IV, m2))

			// standard digests agree, with or without a common suffix.
			assert.Equal(t, md4Hex(m1), md4Hex(m2))
			suffix := []byte("any common suffix")
			assert.Equal(t, md4Hex(append(m1, suffix...)), md4Hex(append(m2, suffix...)))
		})
	}
}
