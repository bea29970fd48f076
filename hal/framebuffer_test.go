package hal

import (
	"errors"
	"testing"
)

func TestFramebufferBlit(t *testing.T) {
	fb := NewFramebuffer(8, 4)
	pix := []uint16{1, 2, 3, 4, 5, 6}
	if err := fb.BlitRGB565(5, 2, 3, 2, pix); err != nil {
		t.Fatalf("BlitRGB565() = %v", err)
	}
	if got := fb.At(5, 2); got != 1 {
		t.Fatalf("At(5, 2) = %d, want 1", got)
	}
	if got := fb.At(7, 3); got != 6 {
		t.Fatalf("At(7, 3) = %d, want 6", got)
	}
	if got := fb.At(4, 2); got != 0 {
		t.Fatalf("At(4, 2) = %d, want 0", got)
	}
}

func TestFramebufferRejectsOutside(t *testing.T) {
	fb := NewFramebuffer(8, 4)
	err := fb.BlitRGB565(6, 0, 3, 1, []uint16{1, 2, 3})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("BlitRGB565(outside) = %v, want ErrOutOfBounds", err)
	}
	if err := fb.FillRGB565(0, 0, 0, 1, 7); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("FillRGB565(empty) = %v, want ErrOutOfBounds", err)
	}
	if err := fb.BlitRGB565(0, 0, 2, 2, []uint16{1}); err == nil {
		t.Fatalf("BlitRGB565(short buffer) = nil")
	}
}

func TestFramebufferImage(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.ClearRGB(0xff, 0, 0)
	if err := fb.FillRGB565(1, 1, 1, 1, rgb565(0, 0xff, 0)); err != nil {
		t.Fatalf("FillRGB565() = %v", err)
	}
	img := fb.Image()
	if c := img.RGBAAt(0, 0); c.R != 0xff || c.G != 0 || c.B != 0 || c.A != 0xff {
		t.Fatalf("pixel (0, 0) = %v, want red", c)
	}
	if c := img.RGBAAt(1, 1); c.R != 0 || c.G != 0xff || c.B != 0 {
		t.Fatalf("pixel (1, 1) = %v, want green", c)
	}
}
