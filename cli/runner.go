//go:build !libretro

// Package cli provides a command-line runner for the emulator.
// It handles input polling and runs the emulator in a window without the full UI.
package cli

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/echip8/emu"
)

// keypadBindings maps keyboard keys to keypad indices, mirroring the
// original COSMAC layout:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var keypadBindings = map[ebiten.Key]uint8{
	ebiten.KeyDigit1: 0x1,
	ebiten.KeyDigit2: 0x2,
	ebiten.KeyDigit3: 0x3,
	ebiten.KeyDigit4: 0xC,
	ebiten.KeyQ:      0x4,
	ebiten.KeyW:      0x5,
	ebiten.KeyE:      0x6,
	ebiten.KeyR:      0xD,
	ebiten.KeyA:      0x7,
	ebiten.KeyS:      0x8,
	ebiten.KeyD:      0x9,
	ebiten.KeyF:      0xE,
	ebiten.KeyZ:      0xA,
	ebiten.KeyX:      0x0,
	ebiten.KeyC:      0xB,
	ebiten.KeyV:      0xF,
}

// Runner wraps an emulator for command-line mode.
// It handles input polling (emulator doesn't poll input itself).
// This follows the libretro pattern where the frontend is responsible
// for polling input and passing it to the emulator via SetInput().
type Runner struct {
	emulator *emu.Emulator

	offscreen *ebiten.Image           // Native-resolution buffer for framebuffer upload
	drawOpts  ebiten.DrawImageOptions // Pre-allocated draw options to avoid per-frame allocation
}

// NewRunner creates a new Runner wrapping the given emulator.
func NewRunner(e *emu.Emulator) *Runner {
	return &Runner{
		emulator:  e,
		offscreen: ebiten.NewImage(emu.ScreenWidth, emu.MaxScreenHeight),
	}
}

// Update implements ebiten.Game. A fatal machine error ends the game loop
// and surfaces through ebiten.RunGame.
func (r *Runner) Update() error {
	if !ebiten.IsFocused() {
		return nil
	}

	// Poll input (runner responsibility, not emulator)
	r.pollInput()

	// Run one frame of emulation
	r.emulator.RunFrame()

	return r.emulator.Err()
}

// Draw implements ebiten.Game. The framebuffer is scaled to the window with
// nearest-neighbor filtering, centered, aspect preserved.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.offscreen.WritePixels(r.emulator.GetFramebuffer())

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	nativeW := float64(emu.ScreenWidth)
	nativeH := float64(emu.MaxScreenHeight)

	scaleX := float64(screenW) / nativeW
	scaleY := float64(screenH) / nativeH
	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}

	offsetX := (float64(screenW) - nativeW*scale) / 2
	offsetY := (float64(screenH) - nativeH*scale) / 2

	r.drawOpts = ebiten.DrawImageOptions{}
	r.drawOpts.GeoM.Scale(scale, scale)
	r.drawOpts.GeoM.Translate(offsetX, offsetY)
	r.drawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(r.offscreen, &r.drawOpts)
}

// Layout implements ebiten.Game.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Return window size so we control scaling in Draw()
	return outsideWidth, outsideHeight
}

// pollInput reads keyboard state into the keypad bitmask.
func (r *Runner) pollInput() {
	var buttons uint32
	for key, idx := range keypadBindings {
		if ebiten.IsKeyPressed(key) {
			buttons |= 1 << idx
		}
	}
	r.emulator.SetInput(0, buttons)
}
