package ref

import (
	"testing"

	"github.com/zeebo/assert"

	"github.com/stamp711/md4rip/internal/consts"
)

func TestCompress(t *testing.T) {
	cases := []struct {
		name  string
		block [16]uint32
		out   [4]uint32
	}{
		{
			name:  "empty",
			block: [16]uint32{0: 0x00000080},
			out:   [4]uint32{0xe0cfd631, 0x31e96ad1, 0xd7593cb7, 0xc089c0e0},
		},
		{
			name:  "abc",
			block: [16]uint32{0: 0x80636261, 14: 24},
			out:   [4]uint32{0x7a0148a4, 0x52d821af, 0xe80ac15f, 0x9d72a67a},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			chain := consts.IV
			var out [4]uint32
			Compress(&chain, &c.block, &out)
			assert.Equal(t, out, c.out)
			assert.Equal(t, chain, consts.IV)
		})
	}
}
