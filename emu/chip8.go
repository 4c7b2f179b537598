package emu

import (
	"errors"
	"fmt"
)

const (
	memorySize   = 4096
	startAddress = 0x200
	stackDepth   = 16
	keypadKeys   = 16
)

// MaxProgramSize is the largest program image that fits above the reserved
// low memory.
const MaxProgramSize = memorySize - startAddress

// Fatal machine conditions. Every one of them halts the machine for good;
// the driver's only recourse is a fresh instance.
var (
	ErrProgramTooLarge = errors.New("program image exceeds available memory")
	ErrUnknownOpcode   = errors.New("unknown opcode")
	ErrStackOverflow   = errors.New("call stack overflow")
	ErrStackUnderflow  = errors.New("return with empty call stack")
	ErrIndexOutOfRange = errors.New("index register access out of range")
	ErrPCOutOfRange    = errors.New("program counter out of range")
)

// Chip8 is the machine: register file, memory, call stack, timers, keypad
// snapshot, and the owned display and random source. One instance is driven
// sequentially by exactly one caller; nothing is shared between instances.
type Chip8 struct {
	v      [16]uint8
	memory [memorySize]uint8
	index  uint16
	pc     uint16
	stack  [stackDepth]uint16
	sp     int

	delayTimer uint8
	soundTimer uint8

	keypad  [keypadKeys]uint8
	display *Display
	rand    *LFSR
}

// NewChip8 builds a machine from a raw program image. The glyph table is
// written at its fixed low address and the program at 0x200. An image larger
// than MaxProgramSize fails construction; an empty image is accepted.
func NewChip8(program []byte) (*Chip8, error) {
	if len(program) > MaxProgramSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	c := &Chip8{
		pc:      startAddress,
		display: NewDisplay(),
		rand:    NewLFSR(),
	}
	copy(c.memory[fontStartAddress:], fontSet[:])
	copy(c.memory[startAddress:], program)
	return c, nil
}

// Step runs exactly one instruction cycle: fetch the big-endian opcode at pc,
// execute it, apply its control-flow effect, then tick both timers. The
// caller chooses the cadence; Step never blocks.
func (c *Chip8) Step() error {
	if int(c.pc)+1 >= memorySize {
		return fmt.Errorf("%w: pc=0x%03X", ErrPCOutOfRange, c.pc)
	}
	op := uint16(c.memory[c.pc])<<8 | uint16(c.memory[c.pc+1])

	next, err := c.execute(op)
	if err != nil {
		return err
	}
	c.pc = next

	if c.delayTimer > 0 {
		c.delayTimer--
	}
	if c.soundTimer > 0 {
		c.soundTimer--
	}
	return nil
}

// execute decodes one opcode and returns the next program counter value.
// Skips resolve to pc+4, plain instructions to pc+2, jumps to their target.
func (c *Chip8) execute(op uint16) (uint16, error) {
	var (
		x   = uint8(op>>8) & 0xF
		y   = uint8(op>>4) & 0xF
		n   = uint8(op) & 0xF
		kk  = uint8(op)
		nnn = op & 0x0FFF
	)
	next := c.pc + 2
	skip := c.pc + 4

	switch op >> 12 {
	case 0x0:
		switch op {
		case 0x00E0: // CLS
			c.display.Clear()
			return next, nil
		case 0x00EE: // RET: resume after the call site
			if c.sp == 0 {
				return 0, fmt.Errorf("%w: pc=0x%03X", ErrStackUnderflow, c.pc)
			}
			c.sp--
			return c.stack[c.sp] + 2, nil
		}

	case 0x1: // JP nnn
		return nnn, nil

	case 0x2: // CALL nnn: the call site's own address is pushed
		if c.sp == stackDepth {
			return 0, fmt.Errorf("%w: pc=0x%03X", ErrStackOverflow, c.pc)
		}
		c.stack[c.sp] = c.pc
		c.sp++
		return nnn, nil

	case 0x3: // SE Vx, kk
		if c.v[x] == kk {
			return skip, nil
		}
		return next, nil

	case 0x4: // SNE Vx, kk
		if c.v[x] != kk {
			return skip, nil
		}
		return next, nil

	case 0x5: // SE Vx, Vy
		if n == 0 {
			if c.v[x] == c.v[y] {
				return skip, nil
			}
			return next, nil
		}

	case 0x6: // LD Vx, kk
		c.v[x] = kk
		return next, nil

	case 0x7: // ADD Vx, kk (wrapping, no flag)
		c.v[x] += kk
		return next, nil

	case 0x8:
		if c.executeALU(x, y, n) {
			return next, nil
		}

	case 0x9: // SNE Vx, Vy
		if n == 0 {
			if c.v[x] != c.v[y] {
				return skip, nil
			}
			return next, nil
		}

	case 0xA: // LD I, nnn
		c.index = nnn
		return next, nil

	case 0xB: // JP nnn
		return nnn, nil

	case 0xC: // RND Vx, kk
		c.v[x] = c.rand.Gen() & kk
		return next, nil

	case 0xD: // DRW Vx, Vy, n
		end := int(c.index) + int(n)
		if end > memorySize {
			return 0, fmt.Errorf("%w: index=0x%X length=%d", ErrIndexOutOfRange, c.index, n)
		}
		c.v[0xF] = c.display.Draw(c.v[x], c.v[y], c.memory[c.index:end])
		return next, nil

	case 0xE:
		switch kk {
		case 0x9E: // SKP Vx
			if c.keypad[c.v[x]&0xF] == 1 {
				return skip, nil
			}
			return next, nil
		case 0xA1: // SKNP Vx
			if c.keypad[c.v[x]&0xF] != 1 {
				return skip, nil
			}
			return next, nil
		}

	case 0xF:
		return c.executeMisc(x, kk)
	}

	return 0, fmt.Errorf("%w: 0x%04X", ErrUnknownOpcode, op)
}

// executeALU handles the 8xyN register-to-register group. All of these fall
// through to the next instruction; it reports false only for an unassigned N.
// The flag register is written after the result so it survives even when
// VF itself is the destination operand.
func (c *Chip8) executeALU(x, y, n uint8) bool {
	switch n {
	case 0x0: // LD Vx, Vy
		c.v[x] = c.v[y]
	case 0x1: // OR Vx, Vy
		c.v[x] |= c.v[y]
	case 0x2: // AND Vx, Vy
		c.v[x] &= c.v[y]
	case 0x3: // XOR Vx, Vy
		c.v[x] ^= c.v[y]
	case 0x4: // ADD Vx, Vy with carry flag
		sum := uint16(c.v[x]) + uint16(c.v[y])
		c.v[x] = uint8(sum)
		if sum > 0xFF {
			c.v[0xF] = 1
		} else {
			c.v[0xF] = 0
		}
	case 0x5: // SUB Vx, Vy; flag is 1 when no borrow
		noBorrow := c.v[x] >= c.v[y]
		c.v[x] -= c.v[y]
		c.v[0xF] = flagByte(noBorrow)
	case 0x6: // SHR Vx; flag is the bit shifted out
		bit := c.v[x] & 0x1
		c.v[x] >>= 1
		c.v[0xF] = bit
	case 0x7: // SUBN Vx, Vy: Vy - Vx; flag is 1 when no borrow
		noBorrow := c.v[y] >= c.v[x]
		c.v[x] = c.v[y] - c.v[x]
		c.v[0xF] = flagByte(noBorrow)
	case 0xE: // SHL Vx; flag is the bit shifted out
		bit := c.v[x] >> 7
		c.v[x] <<= 1
		c.v[0xF] = bit
	default:
		return false
	}
	return true
}

// executeMisc handles the FxNN group.
func (c *Chip8) executeMisc(x, kk uint8) (uint16, error) {
	next := c.pc + 2

	switch kk {
	case 0x07: // LD Vx, DT
		c.v[x] = c.delayTimer
		return next, nil

	case 0x0A: // LD Vx, K: spin on the same instruction until a key is down
		for i, k := range c.keypad {
			if k == 1 {
				c.v[x] = uint8(i)
				return next, nil
			}
		}
		return c.pc, nil

	case 0x15: // LD DT, Vx
		c.delayTimer = c.v[x]
		return next, nil

	case 0x18: // LD ST, Vx
		c.soundTimer = c.v[x]
		return next, nil

	case 0x1E: // ADD I, Vx (no flag; range is checked at point of use)
		c.index += uint16(c.v[x])
		return next, nil

	case 0x29: // LD F, Vx: glyph address of the digit in Vx
		c.index = fontStartAddress + 5*uint16(c.v[x]&0xF)
		return next, nil

	case 0x33: // LD B, Vx: BCD digits at I, I+1, I+2
		if int(c.index)+3 > memorySize {
			return 0, fmt.Errorf("%w: index=0x%X length=3", ErrIndexOutOfRange, c.index)
		}
		c.memory[c.index] = c.v[x] / 100
		c.memory[c.index+1] = c.v[x] / 10 % 10
		c.memory[c.index+2] = c.v[x] % 10
		return next, nil

	case 0x55: // LD [I], V0..Vx
		if int(c.index)+int(x)+1 > memorySize {
			return 0, fmt.Errorf("%w: index=0x%X length=%d", ErrIndexOutOfRange, c.index, x+1)
		}
		copy(c.memory[c.index:], c.v[:x+1])
		return next, nil

	case 0x65: // LD V0..Vx, [I]
		if int(c.index)+int(x)+1 > memorySize {
			return 0, fmt.Errorf("%w: index=0x%X length=%d", ErrIndexOutOfRange, c.index, x+1)
		}
		copy(c.v[:x+1], c.memory[c.index:int(c.index)+int(x)+1])
		return next, nil
	}

	return 0, fmt.Errorf("%w: 0xF%01X%02X", ErrUnknownOpcode, x, kk)
}

func flagByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// PressKey marks a keypad slot (0-15) as held. Out-of-range indices are a
// caller contract violation and are ignored.
func (c *Chip8) PressKey(idx uint8) {
	if idx < keypadKeys {
		c.keypad[idx] = 1
	}
}

// ReleaseKey marks a keypad slot (0-15) as released.
func (c *Chip8) ReleaseKey(idx uint8) {
	if idx < keypadKeys {
		c.keypad[idx] = 0
	}
}

// Video returns the framebuffer cells, row-major, one 0/1 cell per pixel.
func (c *Chip8) Video() []uint8 {
	return c.display.Video()
}

// Dirty reports whether the framebuffer changed since the last SetClean.
func (c *Chip8) Dirty() bool {
	return c.display.Dirty()
}

// SetClean acknowledges the current frame.
func (c *Chip8) SetClean() {
	c.display.SetClean()
}
