package md4rip

//
// buffer folds a prefix block by block into a chaining state
//

type buffer struct {
	len    uint64 // total bytes written, wrapping
	blocks uint64 // full blocks folded into state
	state  State
	buf    [BlockSize]byte
	bufn   int
}

func newBuffer() buffer { return buffer{state: IV} }

func (a *buffer) reset() {
	a.len = 0
	a.blocks = 0
	a.state = IV
	a.bufn = 0
}

func (a *buffer) update(p []byte) {
	a.len += uint64(len(p))

	for len(p) > 0 {
		if a.bufn == 0 && len(p) >= BlockSize {
			a.consume((*[BlockSize]byte)(p))
			p = p[BlockSize:]
			continue
		}

		n := copy(a.buf[a.bufn:], p)
		a.bufn += n
		p = p[n:]

		if a.bufn == BlockSize {
			a.consume(&a.buf)
			a.bufn = 0
		}
	}
}

func (a *buffer) consume(block *[BlockSize]byte) {
	a.state.Apply(block)
	a.blocks++
}

// finalize returns the state after zero padding any partial block, and the
// padding used. A buffer on a block boundary, including an empty one, gets no
// padding at all. The buffer itself is not changed.
func (a *buffer) finalize() (State, []byte) {
	if a.bufn == 0 {
		return a.state, []byte{}
	}

	padding := make([]byte, BlockSize-a.bufn)
	last := a.buf
	copy(last[a.bufn:], padding)

	state := a.state
	state.Apply(&last)
	return state, padding
}
