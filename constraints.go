package md4rip

// kind says how a condition fixes one bit of a register.
type kind uint8

const (
	equal kind = iota // copy the bit from the reference register
	zero
	one
)

// cond fixes one bit of a round 1 register. The reference register for equal
// is the step's second operand, the register written by the previous step.
type cond struct {
	bit  uint8
	kind kind
}

// refCond fixes one bit of a round 2 register. ref indexes the four chaining
// registers as they stand when the correction runs.
type refCond struct {
	bit  uint8
	kind kind
	ref  uint8
}

func force(v, ref uint32, bit uint8, k kind) uint32 {
	mask := uint32(1) << (bit & 31)
	switch k {
	case zero:
		return v &^ mask
	case one:
		return v | mask
	default:
		return v ^ (v^ref)&mask
	}
}

func (c cond) apply(v, ref uint32) uint32 { return force(v, ref, c.bit, c.kind) }

func (c cond) holds(v, ref uint32) bool { return c.apply(v, ref) == v }

func (c refCond) apply(v uint32, s *State) uint32 { return force(v, s[c.ref&3], c.bit, c.kind) }

func (c refCond) holds(v uint32, s *State) bool { return c.apply(v, s) == v }

//
// conditions on round 1, one entry per step in order a1, d1, c1, b1, a2, ...
// these tables are never written.
//

var round1 = [16][]cond{
	/* a1 */ {{6, equal}},
	/* d1 */ {{6, zero}, {7, equal}, {10, equal}},
	/* c1 */ {{6, one}, {7, one}, {10, zero}, {25, equal}},
	/* b1 */ {{6, one}, {7, zero}, {10, zero}, {25, zero}},

	/* a2 */ {{7, one}, {10, one}, {25, zero}, {13, equal}},
	/* d2 */ {{13, zero}, {18, equal}, {19, equal}, {20, equal}, {21, equal}, {25, one}},
	/* c2 */ {{12, equal}, {13, zero}, {14, equal}, {18, zero}, {19, zero}, {20, one}, {21, zero}},
	/* b2 */ {{12, one}, {13, one}, {14, zero}, {16, equal}, {18, zero}, {19, zero}, {20, zero}, {21, zero}},

	/* a3 */ {{12, one}, {13, one}, {14, one}, {16, zero}, {18, zero}, {19, zero}, {20, zero}, {22, equal}, {21, one}, {25, equal}},
	/* d3 */ {{12, one}, {13, one}, {14, one}, {16, zero}, {19, zero}, {20, one}, {21, one}, {22, zero}, {25, one}, {29, equal}},
	/* c3 */ {{16, one}, {19, zero}, {20, zero}, {21, zero}, {22, zero}, {25, zero}, {29, one}, {31, equal}},
	/* b3 */ {{19, zero}, {20, one}, {21, one}, {22, equal}, {25, one}, {29, zero}, {31, zero}},

	/* a4 */ {{22, zero}, {25, zero}, {26, equal}, {28, equal}, {29, one}, {31, zero}},
	/* d4 */ {{22, zero}, {25, zero}, {26, one}, {28, one}, {29, zero}, {31, one}},
	/* c4 */ {{18, equal}, {22, one}, {25, one}, {26, zero}, {28, zero}, {29, zero}},
	/* b4 */ {{18, zero}, {25, equal}, {26, one}, {28, one}, {29, zero}, {31, equal}},
}

// a5 runs with the registers at (a4, b4, c4, d4). bit 18 follows c4.
var roundA5 = [5]refCond{
	{18, equal, 2}, {25, one, 0}, {26, zero, 0}, {28, one, 0}, {31, one, 0},
}

// d5 runs with the registers at (a5, b4, c4, d4).
var roundD5 = [5]refCond{
	{18, equal, 0}, {25, equal, 1}, {26, equal, 1}, {28, equal, 1}, {31, equal, 1},
}
