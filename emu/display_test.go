package emu

import "testing"

func TestDisplay_ClearZeroesEverything(t *testing.T) {
	d := NewDisplay()
	d.Draw(10, 10, []uint8{0xFF, 0xFF})
	d.SetClean()

	d.Clear()

	if !d.Dirty() {
		t.Error("Clear should mark the display dirty")
	}
	for i, cell := range d.Video() {
		if cell != 0 {
			t.Fatalf("cell %d not cleared: %d", i, cell)
		}
	}
}

func TestDisplay_DrawSetsPixelsMSBFirst(t *testing.T) {
	d := NewDisplay()

	collision := d.Draw(0, 0, []uint8{0xA0}) // 10100000

	if collision != 0 {
		t.Errorf("expected no collision on empty display, got %d", collision)
	}
	video := d.Video()
	want := []uint8{1, 0, 1, 0, 0, 0, 0, 0}
	for x, w := range want {
		if video[x] != w {
			t.Errorf("pixel (%d,0): expected %d, got %d", x, w, video[x])
		}
	}
}

// Drawing the same sprite twice is a no-op overall (XOR self-inverse) and the
// second draw reports a collision.
func TestDisplay_DrawTwiceRestoresAndCollides(t *testing.T) {
	d := NewDisplay()
	sprite := []uint8{0xF0, 0x90, 0x90, 0x90, 0xF0}

	if c := d.Draw(12, 7, sprite); c != 0 {
		t.Errorf("first draw: expected collision 0, got %d", c)
	}
	if c := d.Draw(12, 7, sprite); c != 1 {
		t.Errorf("second draw: expected collision 1, got %d", c)
	}
	for i, cell := range d.Video() {
		if cell != 0 {
			t.Fatalf("cell %d not restored after double draw: %d", i, cell)
		}
	}
}

func TestDisplay_HorizontalWrap(t *testing.T) {
	d := NewDisplay()

	// Two leftmost sprite bits land on x=63 and wrap to x=0.
	d.Draw(VideoWidth-1, 0, []uint8{0xC0})

	video := d.Video()
	if video[VideoWidth-1] != 1 {
		t.Error("pixel (63,0) not set")
	}
	if video[0] != 1 {
		t.Error("pixel (0,0) not set by wraparound")
	}
}

func TestDisplay_VerticalWrap(t *testing.T) {
	d := NewDisplay()

	// Second sprite row wraps from y=31 to y=0.
	d.Draw(4, VideoHeight-1, []uint8{0x80, 0x80})

	video := d.Video()
	if video[(VideoHeight-1)*VideoWidth+4] != 1 {
		t.Error("pixel (4,31) not set")
	}
	if video[4] != 1 {
		t.Error("pixel (4,0) not set by wraparound")
	}
}

func TestDisplay_DirtyAcknowledge(t *testing.T) {
	d := NewDisplay()
	if !d.Dirty() {
		t.Error("fresh display should be dirty so the first frame renders")
	}

	d.SetClean()
	if d.Dirty() {
		t.Error("SetClean should lower the dirty flag")
	}

	d.Draw(0, 0, []uint8{0x80})
	if !d.Dirty() {
		t.Error("Draw should mark the display dirty")
	}
}
