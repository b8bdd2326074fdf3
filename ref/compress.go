// Package ref is a table-driven MD4 compression function built directly on
// the step operators. It is slow and exists to check the unrolled one.
package ref

import (
	"github.com/stamp711/md4rip/internal/step"
)

// schedules lists the message word used by each of the 16 steps in a round.
var schedules = [3][16]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15},
	{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15},
}

var shifts = [3][4]int{
	{3, 7, 11, 19},
	{3, 5, 9, 13},
	{3, 9, 11, 15},
}

var ops = [3]func(a, b, c, d, m uint32, s int) uint32{step.Op1, step.Op2, step.Op3}

// Compress runs the compression function over block starting at chain and
// writes the new chaining value to out.
func Compress(chain *[4]uint32, block *[16]uint32, out *[4]uint32) {
	s := *chain

	for r := 0; r < 3; r++ {
		for i := 0; i < 16; i++ {
			// registers rotate a, d, c, b: the target of step i is s[-i mod 4]
			// and its operands follow it in order.
			t := (4 - i%4) % 4
			s[t] = ops[r](s[t], s[(t+1)%4], s[(t+2)%4], s[(t+3)%4], block[schedules[r][i]], shifts[r][i%4])
		}
	}

	out[0] = s[0] + chain[0]
	out[1] = s[1] + chain[1]
	out[2] = s[2] + chain[2]
	out[3] = s[3] + chain[3]
}
