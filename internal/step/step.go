// Package step contains the MD4 round functions and the single-step register
// update, forward and inverse.
//
// The inverse recovers the message word that makes a step produce a chosen
// register value. Rotation and wraparound addition are bijections, so every
// value has exactly one such word.
package step

import (
	"math/bits"

	"github.com/stamp711/md4rip/internal/consts"
)

// Func is one of the boolean round functions.
type Func func(x, y, z uint32) uint32

// F selects: if x then y else z.
func F(x, y, z uint32) uint32 { return (x & y) | (^x & z) }

// G is the bitwise majority of x, y and z.
func G(x, y, z uint32) uint32 { return (x & y) | (x & z) | (y & z) }

// H is bitwise parity.
func H(x, y, z uint32) uint32 { return x ^ y ^ z }

// Forward computes rotl(a + fn(b, c, d) + m + k, s).
func Forward(fn Func, k, a, b, c, d, m uint32, s int) uint32 {
	return bits.RotateLeft32(a+fn(b, c, d)+m+k, s)
}

// Inverse returns the m for which Forward(fn, k, a, b, c, d, m, s) == v.
func Inverse(fn Func, k, v uint32, s int, a, b, c, d uint32) uint32 {
	return bits.RotateLeft32(v, -s) - a - fn(b, c, d) - k
}

//
// fixed round variants, spelled out so they inline
//

func Op1(a, b, c, d, m uint32, s int) uint32 {
	return bits.RotateLeft32(a+F(b, c, d)+m, s)
}

func Op2(a, b, c, d, m uint32, s int) uint32 {
	return bits.RotateLeft32(a+G(b, c, d)+m+consts.K2, s)
}

func Op3(a, b, c, d, m uint32, s int) uint32 {
	return bits.RotateLeft32(a+H(b, c, d)+m+consts.K3, s)
}

func Inv1(v uint32, s int, a, b, c, d uint32) uint32 {
	return bits.RotateLeft32(v, -s) - a - F(b, c, d)
}

func Inv2(v uint32, s int, a, b, c, d uint32) uint32 {
	return bits.RotateLeft32(v, -s) - a - G(b, c, d) - consts.K2
}

func Inv3(v uint32, s int, a, b, c, d uint32) uint32 {
	return bits.RotateLeft32(v, -s) - a - H(b, c, d) - consts.K3
}
