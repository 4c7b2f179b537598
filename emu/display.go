package emu

// Display dimensions in pixels.
const (
	VideoWidth  = 64
	VideoHeight = 32
)

// Display is the monochrome framebuffer. Each cell holds strictly 0 or 1.
// Sprites are composited with XOR and wrap around both axes. A dirty flag is
// raised on every mutation and cleared only by the consumer via SetClean,
// so frontends redraw exactly when something changed.
type Display struct {
	video [VideoWidth * VideoHeight]uint8
	dirty bool
}

// NewDisplay returns a cleared display with the dirty flag raised so the
// first frame is always rendered.
func NewDisplay() *Display {
	return &Display{dirty: true}
}

// Clear zeroes every pixel.
func (d *Display) Clear() {
	for i := range d.video {
		d.video[i] = 0
	}
	d.dirty = true
}

// Draw XORs a sprite into the framebuffer at (x, y) and returns 1 if any
// previously lit pixel was cleared by the draw, else 0. Each sprite byte is
// one 8-pixel row, most significant bit leftmost. Coordinates wrap on both
// axes independently.
func (d *Display) Draw(x, y uint8, sprite []uint8) uint8 {
	var collision uint8

	for row, b := range sprite {
		py := (int(y) + row) % VideoHeight
		for col := 0; col < 8; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) % VideoWidth
			cell := &d.video[py*VideoWidth+px]
			if *cell == 1 {
				collision = 1
			}
			*cell ^= 1
		}
	}

	d.dirty = true
	return collision
}

// Video returns the pixel cells in row-major order, origin top-left.
// The caller must not mutate the returned slice.
func (d *Display) Video() []uint8 {
	return d.video[:]
}

// Dirty reports whether the framebuffer changed since the last SetClean.
func (d *Display) Dirty() bool {
	return d.dirty
}

// SetClean acknowledges the current frame after the consumer has rendered it.
func (d *Display) SetClean() {
	d.dirty = false
}
