package emu

import (
	"strconv"

	emucore "github.com/user-none/eblitui/api"
)

// Compile-time interface checks.
var _ emucore.Emulator = (*Emulator)(nil)
var _ emucore.MemoryInspector = (*Emulator)(nil)
var _ emucore.MemoryMapper = (*Emulator)(nil)

// Core identity reported to frontends.
const (
	Name    = "echip8"
	Version = "1.0.0"
)

const (
	ScreenWidth     = VideoWidth
	MaxScreenHeight = VideoHeight

	// FPS is the frame cadence frontends drive RunFrame at. The machine
	// itself has no clock; timers tick once per instruction step.
	FPS = 60

	// DefaultCyclesPerFrame is the instruction budget per RunFrame,
	// roughly 600 instructions per second at 60 fps.
	DefaultCyclesPerFrame = 10
)

// Region is an alias for emucore.Region so internal code compiles unchanged.
// CHIP-8 programs are region-less; the setting has no effect on emulation.
type Region = emucore.Region

const (
	RegionNTSC = emucore.RegionNTSC
	RegionPAL  = emucore.RegionPAL
)

// Emulator wraps the Chip8 machine behind the frontend contract: bitmask
// input, a per-frame instruction budget, and an RGBA view of the monochrome
// framebuffer. A fatal machine error latches the emulator halted; the
// frontend reads it via Err and decides whether to build a fresh instance.
type Emulator struct {
	machine *Chip8
	region  Region

	cyclesPerFrame int
	err            error

	// RGBA conversion buffer, rebuilt only when the display is dirty.
	frame []byte
}

// NewEmulator creates an emulator from a raw program image.
func NewEmulator(rom []byte, region Region) (Emulator, error) {
	machine, err := NewChip8(rom)
	if err != nil {
		return Emulator{}, err
	}

	return Emulator{
		machine:        machine,
		region:         region,
		cyclesPerFrame: DefaultCyclesPerFrame,
		frame:          make([]byte, VideoWidth*VideoHeight*4),
	}, nil
}

// RunFrame executes one frame's worth of instruction steps and refreshes the
// RGBA framebuffer if the display changed. Once a fatal error has latched,
// further frames are no-ops.
func (e *Emulator) RunFrame() {
	if e.err != nil {
		return
	}

	for i := 0; i < e.cyclesPerFrame; i++ {
		if err := e.machine.Step(); err != nil {
			e.err = err
			break
		}
	}

	if e.machine.Dirty() {
		e.refreshFrame()
		e.machine.SetClean()
	}
}

// Err returns the fatal machine error that halted emulation, or nil.
func (e *Emulator) Err() error {
	return e.err
}

// refreshFrame rasterizes the 0/1 cells into white-on-black RGBA.
func (e *Emulator) refreshFrame() {
	video := e.machine.Video()
	for i, cell := range video {
		var lum byte
		if cell != 0 {
			lum = 0xFF
		}
		off := i * 4
		e.frame[off+0] = lum
		e.frame[off+1] = lum
		e.frame[off+2] = lum
		e.frame[off+3] = 0xFF
	}
}

// SetInput unpacks a button bitmask into keypad state. Bit k of buttons is
// keypad key k. The machine has one keypad, so only player 0 is honored.
func (e *Emulator) SetInput(player int, buttons uint32) {
	if player != 0 {
		return
	}
	for k := uint8(0); k < keypadKeys; k++ {
		if buttons&(1<<k) != 0 {
			e.machine.PressKey(k)
		} else {
			e.machine.ReleaseKey(k)
		}
	}
}

// GetFramebuffer returns raw RGBA pixel data for the current frame.
func (e *Emulator) GetFramebuffer() []byte {
	return e.frame
}

// GetFramebufferStride returns the stride (bytes per row) of the framebuffer.
func (e *Emulator) GetFramebufferStride() int {
	return VideoWidth * 4
}

// GetActiveHeight returns the display height; it never changes.
func (e *Emulator) GetActiveHeight() int {
	return VideoHeight
}

// GetAudioSamples returns no samples: the sound timer is emulated but the
// core produces no audio output.
func (e *Emulator) GetAudioSamples() []int16 {
	return nil
}

// GetRegion returns the emulator's region setting.
func (e *Emulator) GetRegion() Region {
	return e.region
}

// SetRegion records the region setting. Emulation is unaffected.
func (e *Emulator) SetRegion(region Region) {
	e.region = region
}

// GetTiming returns the frame cadence for the frontend loop.
func (e *Emulator) GetTiming() emucore.Timing {
	return emucore.Timing{
		FPS:       FPS,
		Scanlines: VideoHeight,
	}
}

// SetOption applies a core option change identified by key.
func (e *Emulator) SetOption(key string, value string) {
	switch key {
	case "cycles_per_frame":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			e.cyclesPerFrame = n
		}
	}
}

// Close releases any resources held by the emulator.
func (e *Emulator) Close() {}

// =============================================================================
// MemoryInspector interface
// =============================================================================

// ReadMemory reads from a flat address into buf and returns the number of
// bytes read. The machine's whole 4KB address space maps at 0x0000.
func (e *Emulator) ReadMemory(addr uint32, buf []byte) uint32 {
	var count uint32
	for i := range buf {
		cur := addr + uint32(i)
		if cur >= memorySize {
			return count
		}
		buf[i] = e.machine.memory[cur]
		count++
	}
	return count
}

// =============================================================================
// MemoryMapper interface
// =============================================================================

// MemoryMap returns a list of available memory regions with sizes.
func (e *Emulator) MemoryMap() []emucore.MemoryRegion {
	return []emucore.MemoryRegion{
		{Type: emucore.MemorySystemRAM, Size: memorySize},
	}
}

// ReadRegion returns a copy of the specified memory region.
func (e *Emulator) ReadRegion(regionType int) []byte {
	switch regionType {
	case emucore.MemorySystemRAM:
		out := make([]byte, memorySize)
		copy(out, e.machine.memory[:])
		return out
	default:
		return nil
	}
}

// WriteRegion writes data to the specified memory region.
func (e *Emulator) WriteRegion(regionType int, data []byte) {
	switch regionType {
	case emucore.MemorySystemRAM:
		copy(e.machine.memory[:], data)
	}
}
