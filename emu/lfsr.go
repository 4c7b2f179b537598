package emu

// lfsrSeed is the fixed power-on state of the random source. The generator
// is fully deterministic so that a given program produces the same pixel
// sequence on every run and platform.
const lfsrSeed = 0x1234

// LFSR is a 16-bit maximal-length linear-feedback shift register used by the
// random-fill instruction. One call to bit() produces one pseudo-random bit;
// Gen composes eight of them into a byte.
type LFSR struct {
	state uint16
}

// NewLFSR returns a generator seeded to the fixed initial state.
func NewLFSR() *LFSR {
	return &LFSR{state: lfsrSeed}
}

// bit advances the register by one step and returns the feedback bit.
// Taps are at bit positions 0, 2, 3 and 5.
func (l *LFSR) bit() uint8 {
	bit := (l.state ^ (l.state >> 2) ^ (l.state >> 3) ^ (l.state >> 5)) & 1
	l.state = (l.state >> 1) | (bit << 15)
	return uint8(bit)
}

// Gen returns one pseudo-random byte, assembled least-significant bit first.
func (l *LFSR) Gen() uint8 {
	var r uint8
	for i := 0; i < 8; i++ {
		r += l.bit() << i
	}
	return r
}
