package md4rip

import (
	"math/bits"

	"github.com/stamp711/md4rip/internal/consts"
)

func r1(a, b, c, d, m uint32, s int) uint32 {
	return bits.RotateLeft32(a+((b&c)|(^b&d))+m, s)
}

func r2(a, b, c, d, m uint32, s int) uint32 {
	return bits.RotateLeft32(a+((b&c)|(b&d)|(c&d))+m+consts.K2, s)
}

func r3(a, b, c, d, m uint32, s int) uint32 {
	return bits.RotateLeft32(a+(b^c^d)+m+consts.K3, s)
}

func compress(s *State, m *[16]uint32) State {
	a, b, c, d := s[0], s[1], s[2], s[3]

	a = r1(a, b, c, d, m[0], 3)
	d = r1(d, a, b, c, m[1], 7)
	c = r1(c, d, a, b, m[2], 11)
	b = r1(b, c, d, a, m[3], 19)
	a = r1(a, b, c, d, m[4], 3)
	d = r1(d, a, b, c, m[5], 7)
	c = r1(c, d, a, b, m[6], 11)
	b = r1(b, c, d, a, m[7], 19)
	a = r1(a, b, c, d, m[8], 3)
	d = r1(d, a, b, c, m[9], 7)
	c = r1(c, d, a, b, m[10], 11)
	b = r1(b, c, d, a, m[11], 19)
	a = r1(a, b, c, d, m[12], 3)
	d = r1(d, a, b, c, m[13], 7)
	c = r1(c, d, a, b, m[14], 11)
	b = r1(b, c, d, a, m[15], 19)

	a = r2(a, b, c, d, m[0], 3)
	d = r2(d, a, b, c, m[4], 5)
	c = r2(c, d, a, b, m[8], 9)
	b = r2(b, c, d, a, m[12], 13)
	a = r2(a, b, c, d, m[1], 3)
	d = r2(d, a, b, c, m[5], 5)
	c = r2(c, d, a, b, m[9], 9)
	b = r2(b, c, d, a, m[13], 13)
	a = r2(a, b, c, d, m[2], 3)
	d = r2(d, a, b, c, m[6], 5)
	c = r2(c, d, a, b, m[10], 9)
	b = r2(b, c, d, a, m[14], 13)
	a = r2(a, b, c, d, m[3], 3)
	d = r2(d, a, b, c, m[7], 5)
	c = r2(c, d, a, b, m[11], 9)
	b = r2(b, c, d, a, m[15], 13)

	a = r3(a, b, c, d, m[0], 3)
	d = r3(d, a, b, c, m[8], 9)
	c = r3(c, d, a, b, m[4], 11)
	b = r3(b, c, d, a, m[12], 15)
	a = r3(a, b, c, d, m[2], 3)
	d = r3(d, a, b, c, m[10], 9)
	c = r3(c, d, a, b, m[6], 11)
	b = r3(b, c, d, a, m[14], 15)
	a = r3(a, b, c, d, m[1], 3)
	d = r3(d, a, b, c, m[9], 9)
	c = r3(c, d, a, b, m[5], 11)
	b = r3(b, c, d, a, m[13], 15)
	a = r3(a, b, c, d, m[3], 3)
	d = r3(d, a, b, c, m[11], 9)
	c = r3(c, d, a, b, m[7], 11)
	b = r3(b, c, d, a, m[15], 15)

	return State{s[0] + a, s[1] + b, s[2] + c, s[3] + d}
}
