package consts

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/zeebo/assert"
)

func TestIsLittleEndian(t *testing.T) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], 0x01020304)
	assert.Equal(t, IsLittleEndian, *(*uint32)(unsafe.Pointer(&buf[0])) == 0x01020304)
}

func TestIV(t *testing.T) {
	// the IV is the byte sequence 01 23 45 ... 10 read as little-endian words.
	raw := []byte{
		0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
		0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10,
	}
	for i, v := range IV {
		assert.Equal(t, v, binary.LittleEndian.Uint32(raw[4*i:]))
	}
}
