package md4rip

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/stamp711/md4rip/internal/utils"
)

// State is an MD4 chaining state: the four registers a, b, c and d carried
// from one block to the next.
type State [4]uint32

// Compress returns the state after folding block into s. s is unchanged.
func (s State) Compress(block *[BlockSize]byte) State {
	var m [16]uint32
	utils.BytesToWords(block, &m)
	return compress(&s, &m)
}

// Apply folds block into s in place.
func (s *State) Apply(block *[BlockSize]byte) {
	*s = s.Compress(block)
}

// Bytes returns the little-endian serialization of s. For a state reached by
// standard padding this is the MD4 digest.
func (s State) Bytes() (out [StateSize]byte) {
	binary.LittleEndian.PutUint32(out[0:], s[0])
	binary.LittleEndian.PutUint32(out[4:], s[1])
	binary.LittleEndian.PutUint32(out[8:], s[2])
	binary.LittleEndian.PutUint32(out[12:], s[3])
	return out
}

// String returns Bytes as lowercase hex.
func (s State) String() string {
	b := s.Bytes()
	return hex.EncodeToString(b[:])
}
