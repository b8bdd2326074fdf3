package md4rip

import (
	"math/rand"
	"testing"
)

func FuzzBuffer(f *testing.F) {
	f.Add([]byte{1, 63, 64, 65})
	f.Add([]byte{0, 128, 0, 3})

	f.Fuzz(func(t *testing.T, prog []byte) {
		l := 0
		for _, v := range prog {
			l += int(v)
		}
		data := make([]byte, l)
		rand.New(rand.NewSource(0)).Read(data)

		a, b := newBuffer(), data
		for _, v := range prog {
			a.update(b[:v])
			b = b[v:]
		}
		s1, pad1 := a.finalize()

		s2 := fold(IV, append(append([]byte{}, data...), pad1...))
		if s1 != s2 {
			t.Fatalf("s1: %v, s2: %v", s1, s2)
		}
		if (l+len(pad1))%BlockSize != 0 || len(pad1) >= BlockSize {
			t.Fatalf("bad padding length %d for %d bytes", len(pad1), l)
		}
	})
}
