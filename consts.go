package md4rip

import "github.com/stamp711/md4rip/internal/consts"

const (
	// BlockSize is the size of an MD4 message block in bytes.
	BlockSize = consts.BlockLen

	// StateSize is the size of a serialized chaining state in bytes.
	StateSize = consts.StateLen
)

// IV is the MD4 initial chaining state.
var IV = State{consts.IV0, consts.IV1, consts.IV2, consts.IV3}
