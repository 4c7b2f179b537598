//go:build !libretro

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/user-none/echip8/cli"
	"github.com/user-none/echip8/emu"
	"github.com/user-none/echip8/romloader"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	romPath := flag.String("rom", "", "path to ROM file")
	cycles := flag.Int("cycles", emu.DefaultCyclesPerFrame, "instructions executed per frame")
	flag.Parse()

	if *romPath == "" {
		fmt.Println("Usage: go run main.go -rom <romfile> [-cycles n]")
		os.Exit(1)
	}

	romData, _, err := romloader.LoadROM(*romPath)
	if err != nil {
		log.Fatalf("Failed to load ROM: %v", err)
	}

	e, err := emu.NewEmulator(romData, emu.RegionNTSC)
	if err != nil {
		log.Fatalf("Failed to start emulator: %v", err)
	}
	e.SetOption("cycles_per_frame", fmt.Sprintf("%d", *cycles))

	runner := cli.NewRunner(&e)

	ebiten.SetWindowSize(emu.ScreenWidth*10, emu.MaxScreenHeight*10)
	ebiten.SetWindowTitle("eCHIP-8")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(emu.ScreenWidth, emu.MaxScreenHeight, -1, -1)
	ebiten.SetTPS(emu.FPS)

	if err := ebiten.RunGame(runner); err != nil {
		log.Fatal(err)
	}
}
