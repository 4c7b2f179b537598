package main

import (
	libretro "github.com/user-none/eblitui/libretro"
	"github.com/user-none/echip8/adapter"
)

func init() {
	libretro.RegisterFactory(&adapter.Factory{}, []libretro.RetropadMapping{
		{RetroID: libretro.JoypadUp, BitID: 0x2},
		{RetroID: libretro.JoypadDown, BitID: 0x8},
		{RetroID: libretro.JoypadLeft, BitID: 0x4},
		{RetroID: libretro.JoypadRight, BitID: 0x6},
		{RetroID: libretro.JoypadA, BitID: 0x5},
		{RetroID: libretro.JoypadB, BitID: 0x0},
		{RetroID: libretro.JoypadX, BitID: 0x1},
		{RetroID: libretro.JoypadY, BitID: 0x3},
		{RetroID: libretro.JoypadStart, BitID: 0xF},
		{RetroID: libretro.JoypadSelect, BitID: 0xE},
		{RetroID: libretro.JoypadL, BitID: 0xA},
		{RetroID: libretro.JoypadR, BitID: 0xD},
		{RetroID: libretro.JoypadL2, BitID: 0x7},
		{RetroID: libretro.JoypadR2, BitID: 0x9},
		{RetroID: libretro.JoypadL3, BitID: 0xC},
		{RetroID: libretro.JoypadR3, BitID: 0xB},
	})
}

func main() {}
