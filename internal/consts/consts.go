package consts

import "golang.org/x/sys/cpu"

// IsLittleEndian reports whether words can be read straight out of a block's
// memory without byte swapping.
var IsLittleEndian = !cpu.IsBigEndian

var IV = [...]uint32{IV0, IV1, IV2, IV3}

const (
	IV0 = 0x67452301
	IV1 = 0xEFCDAB89
	IV2 = 0x98BADCFE
	IV3 = 0x10325476
)

// additive constants for rounds 2 and 3. round 1 has none.
const (
	K2 = 0x5A827999
	K3 = 0x6ED9EBA1
)

const (
	BlockLen = 64
	WordLen  = 16
	StateLen = 16
)
