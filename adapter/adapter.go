package adapter

import (
	emucore "github.com/user-none/eblitui/api"
	"github.com/user-none/echip8/emu"
)

// Compile-time interface check.
var _ emucore.CoreFactory = (*Factory)(nil)

// Factory implements emucore.CoreFactory for the CHIP-8 emulator.
type Factory struct{}

// SystemInfo returns system metadata for UI configuration. The sixteen
// keypad keys map to input bits 0x0-0xF and default to the classic
// 1234/QWER/ASDF/ZXCV keyboard layout.
func (f *Factory) SystemInfo() emucore.SystemInfo {
	return emucore.SystemInfo{
		Name:            "echip8",
		ConsoleName:     "CHIP-8",
		Extensions:      []string{".ch8", ".c8"},
		ScreenWidth:     emu.ScreenWidth,
		MaxScreenHeight: emu.MaxScreenHeight,
		AspectRatio:     64.0 / 32.0,
		SampleRate:      48000,
		Buttons: []emucore.Button{
			{Name: "0", ID: 0x0, DefaultKey: "X", DefaultPad: "B"},
			{Name: "1", ID: 0x1, DefaultKey: "1"},
			{Name: "2", ID: 0x2, DefaultKey: "2", DefaultPad: "Up"},
			{Name: "3", ID: 0x3, DefaultKey: "3"},
			{Name: "4", ID: 0x4, DefaultKey: "Q", DefaultPad: "Left"},
			{Name: "5", ID: 0x5, DefaultKey: "W", DefaultPad: "A"},
			{Name: "6", ID: 0x6, DefaultKey: "E", DefaultPad: "Right"},
			{Name: "7", ID: 0x7, DefaultKey: "A"},
			{Name: "8", ID: 0x8, DefaultKey: "S", DefaultPad: "Down"},
			{Name: "9", ID: 0x9, DefaultKey: "D"},
			{Name: "A", ID: 0xA, DefaultKey: "Z"},
			{Name: "B", ID: 0xB, DefaultKey: "C"},
			{Name: "C", ID: 0xC, DefaultKey: "4"},
			{Name: "D", ID: 0xD, DefaultKey: "R"},
			{Name: "E", ID: 0xE, DefaultKey: "F"},
			{Name: "F", ID: 0xF, DefaultKey: "V"},
		},
		Players:     1,
		DataDirName: "echip8",
		CoreName:    emu.Name,
		CoreVersion: emu.Version,
	}
}

// CreateEmulator creates a new emulator instance with the given ROM and region.
func (f *Factory) CreateEmulator(rom []byte, region emucore.Region) (emucore.Emulator, error) {
	e, err := emu.NewEmulator(rom, region)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// DetectRegion auto-detects the region from ROM data. CHIP-8 programs carry
// no region metadata, so this always reports NTSC without a database hit.
func (f *Factory) DetectRegion(rom []byte) (emucore.Region, bool) {
	return emucore.RegionNTSC, false
}
