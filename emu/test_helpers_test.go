package emu

import "testing"

// makeProgram assembles 16-bit opcodes into a big-endian program image.
func makeProgram(opcodes ...uint16) []byte {
	prog := make([]byte, 0, len(opcodes)*2)
	for _, op := range opcodes {
		prog = append(prog, byte(op>>8), byte(op))
	}
	return prog
}

// mustChip8 builds a machine from opcodes and fails the test on a load error.
func mustChip8(t *testing.T, opcodes ...uint16) *Chip8 {
	t.Helper()
	c, err := NewChip8(makeProgram(opcodes...))
	if err != nil {
		t.Fatalf("NewChip8 failed: %v", err)
	}
	return c
}

// stepN runs n instruction cycles, failing the test on any error.
func stepN(t *testing.T, c *Chip8, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("Step %d failed: %v", i, err)
		}
	}
}
