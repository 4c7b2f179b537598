// Package emuios provides a gomobile-compatible interface to the emulator.
package emuios

import (
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"

	"github.com/user-none/echip8/emu"
	"github.com/user-none/echip8/romloader"
)

// ExtractResult contains the result of ROM extraction
type ExtractResult struct {
	Crc32    string // Hex string, e.g., "AABBCCDD"
	Filename string // Original filename from archive, e.g., "pong.ch8"
}

// currentEmu holds the emulator state (unexported)
var currentEmu *emulatorState

type emulatorState struct {
	emulator  emu.Emulator
	buttons   uint32
	frameData []byte
}

// InitFromPath creates an emulator from a ROM file path.
// Automatically extracts from ZIP/7z/gzip/RAR if needed.
// Returns true on success, false on error.
func InitFromPath(path string) bool {
	rom, _, err := romloader.LoadROM(path)
	if err != nil {
		return false
	}

	e, err := emu.NewEmulator(rom, emu.RegionNTSC)
	if err != nil {
		return false
	}
	currentEmu = &emulatorState{emulator: e}
	return true
}

// Close releases the emulator.
func Close() {
	currentEmu = nil
}

// RunFrame executes one frame of emulation.
func RunFrame() {
	if currentEmu == nil {
		return
	}
	currentEmu.emulator.RunFrame()

	// Cache frame buffer for GetFrameData
	currentEmu.frameData = currentEmu.emulator.GetFramebuffer()
}

// FrameWidth returns the display width (always 64).
func FrameWidth() int {
	return emu.ScreenWidth
}

// FrameHeight returns the display height (always 32).
func FrameHeight() int {
	return emu.MaxScreenHeight
}

// GetFrameData returns the RGBA frame buffer from the last RunFrame.
func GetFrameData() []byte {
	if currentEmu == nil {
		return nil
	}
	return currentEmu.frameData
}

// SetKey sets the pressed state of a single keypad key (0-15).
func SetKey(key int, pressed bool) {
	if currentEmu == nil || key < 0 || key > 0xF {
		return
	}
	if pressed {
		currentEmu.buttons |= 1 << key
	} else {
		currentEmu.buttons &^= 1 << key
	}
	currentEmu.emulator.SetInput(0, currentEmu.buttons)
}

// SetCyclesPerFrame sets the number of instructions executed per frame.
func SetCyclesPerFrame(n int) {
	if currentEmu == nil {
		return
	}
	currentEmu.emulator.SetOption("cycles_per_frame", fmt.Sprintf("%d", n))
}

// Halted returns whether the machine has stopped on a fatal error.
func Halted() bool {
	if currentEmu == nil {
		return false
	}
	return currentEmu.emulator.Err() != nil
}

// ErrorMessage returns the fatal error text, or "" while running.
func ErrorMessage() string {
	if currentEmu == nil {
		return ""
	}
	err := currentEmu.emulator.Err()
	if err == nil {
		return ""
	}
	return err.Error()
}

// GetFPS returns the target FPS.
func GetFPS() int {
	return emu.FPS
}

// GetCRC32FromPath calculates the CRC32 checksum of a ROM file.
// Automatically extracts from ZIP/7z/gzip/RAR if needed.
// Returns -1 on error.
func GetCRC32FromPath(path string) int64 {
	rom, _, err := romloader.LoadROM(path)
	if err != nil {
		return -1
	}

	return int64(crc32.ChecksumIEEE(rom))
}

// ExtractAndStoreROM extracts a ROM from an archive (or copies a raw ROM),
// calculates its CRC32, and stores it as {destDir}/{CRC32}.ch8.
// If a file with the same CRC32 already exists, it skips writing.
// Returns the CRC32 and original filename on success, or an error.
func ExtractAndStoreROM(srcPath, destDir string) (*ExtractResult, error) {
	// Extract ROM (handles zip, 7z, gzip, rar, or raw .ch8)
	rom, filename, err := romloader.LoadROM(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load ROM: %w", err)
	}

	// Calculate CRC32
	crc := crc32.ChecksumIEEE(rom)
	crcHex := fmt.Sprintf("%08X", crc)

	// Build destination path
	destPath := filepath.Join(destDir, crcHex+".ch8")

	// Skip write if file already exists (same CRC = same content)
	if _, err := os.Stat(destPath); err == nil {
		return &ExtractResult{Crc32: crcHex, Filename: filename}, nil
	}

	// Write extracted ROM
	if err := os.WriteFile(destPath, rom, 0644); err != nil {
		return nil, fmt.Errorf("failed to write ROM: %w", err)
	}

	return &ExtractResult{Crc32: crcHex, Filename: filename}, nil
}
