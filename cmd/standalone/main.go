//go:build !libretro && !ios

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/user-none/eblitui/standalone"
	"github.com/user-none/echip8/adapter"
	"github.com/user-none/echip8/emu"
)

func main() {
	romPath := flag.String("rom", "", "path to ROM file (opens UI if not provided)")
	cycles := flag.Int("cycles", emu.DefaultCyclesPerFrame, "instructions executed per frame")
	flag.Parse()

	factory := &adapter.Factory{}

	if *romPath != "" {
		options := map[string]string{
			"cycles_per_frame": fmt.Sprintf("%d", *cycles),
		}
		if err := standalone.RunDirect(factory, *romPath, "auto", options); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := standalone.Run(factory); err != nil {
		log.Fatal(err)
	}
}
