package raster

import "testing"

type pt struct{ x, y int }

func setPixels(t *Tile) map[pt]uint16 {
	out := map[pt]uint16{}
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			if c := t.At(x, y); c != 0 {
				out[pt{x, y}] = c
			}
		}
	}
	return out
}

func TestDrawLineTrivialReject(t *testing.T) {
	tile := New(32, 32)
	tile.DrawLine(-10, 5, -1, 30, 0xffff)
	tile.DrawLine(40, -5, 33, 50, 0xffff)
	tile.DrawLine(0, -3, 31, -1, 0xffff)
	tile.DrawLine(0, 40, 31, 33, 0xffff)
	if n := len(setPixels(tile)); n != 0 {
		t.Fatalf("rejected segments set %d pixels", n)
	}
}

func TestDrawLineShallowPath(t *testing.T) {
	tile := New(8, 8)
	tile.DrawLine(4, 2, 0, 0, 1)
	want := []pt{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}
	got := setPixels(tile)
	if len(got) != len(want) {
		t.Fatalf("DrawLine() set %v, want %v", got, want)
	}
	for _, p := range want {
		if got[p] != 1 {
			t.Fatalf("pixel %v not set; got %v", p, got)
		}
	}
}

func TestDrawLineEndsOnEndpoints(t *testing.T) {
	ends := []pt{{0, 0}, {31, 0}, {31, 31}, {0, 31}, {7, 19}, {20, 3}, {16, 16}}
	for _, a := range ends {
		for _, b := range ends {
			tile := New(32, 32)
			tile.DrawLine(a.x, a.y, b.x, b.y, 1)
			got := setPixels(tile)
			if got[a] == 0 || got[b] == 0 {
				t.Fatalf("DrawLine(%v, %v) missed an endpoint", a, b)
			}
			dx, dy := abs(b.x-a.x), abs(b.y-a.y)
			if want := max(dx, dy) + 1; len(got) != want {
				t.Fatalf("DrawLine(%v, %v) set %d pixels, want %d", a, b, len(got), want)
			}
		}
	}
}

func TestDrawLineOrCombines(t *testing.T) {
	tile := New(8, 8)
	tile.DrawLine(0, 3, 7, 3, 0x00f0)
	tile.DrawLine(3, 0, 3, 7, 0x0f00)
	if got := tile.At(3, 3); got != 0x0ff0 {
		t.Fatalf("At(3, 3) = %#x, want 0x0ff0", got)
	}
	if got := tile.At(2, 3); got != 0x00f0 {
		t.Fatalf("At(2, 3) = %#x, want 0x00f0", got)
	}
}

func TestDrawLinePartialClip(t *testing.T) {
	tile := New(8, 8)
	tile.DrawLine(-4, 4, 11, 4, 1)
	if n := len(setPixels(tile)); n != 8 {
		t.Fatalf("clipped row set %d pixels, want 8", n)
	}
}

func TestFillRectClips(t *testing.T) {
	tile := New(4, 4)
	tile.FillRect(-2, 2, 4, 10, 5)
	if n := len(setPixels(tile)); n != 4 {
		t.Fatalf("FillRect() set %d pixels, want 4", n)
	}
	if tile.At(1, 3) != 5 || tile.At(2, 3) != 0 {
		t.Fatalf("FillRect() wrong area")
	}
}

func TestResetKeepsBuffer(t *testing.T) {
	tile := New(32, 32)
	p := &tile.Pix[0]
	tile.Reset(10, 5)
	if tile.W != 10 || tile.H != 5 || len(tile.Pix) != 50 || &tile.Pix[0] != p {
		t.Fatalf("Reset() reallocated or sized wrong")
	}
}

func TestDrawRefPos(t *testing.T) {
	tile := New(32, 32)
	tile.DrawRefPos(6, 10, 7)
	if n := len(setPixels(tile)); n != 18 {
		t.Fatalf("DrawRefPos() set %d pixels, want 18", n)
	}
	if tile.At(6, 10) != 7 || tile.At(1, 10) != 7 || tile.At(2, 12) != 7 {
		t.Fatalf("DrawRefPos() shape wrong")
	}
	tile = New(32, 32)
	tile.DrawRefPos(6, 40, 7)
	if n := len(setPixels(tile)); n != 0 {
		t.Fatalf("DrawRefPos(off tile) set %d pixels", n)
	}
}

func TestDrawMarker(t *testing.T) {
	tile := New(32, 32)
	tile.DrawMarker(16, 20, 0xffff, '1')
	// Top row spans 11 pixels.
	for x := 11; x <= 21; x++ {
		if tile.At(x, 10) != 0xffff {
			t.Fatalf("top row pixel (%d, 10) not set", x)
		}
	}
	if tile.At(16, 20) != 0xffff {
		t.Fatalf("tip not set")
	}
	// The digit stroke of '1' runs down its centre column.
	if tile.At(17, 13) != 0 {
		t.Fatalf("digit stroke not knocked out")
	}
}

func TestDrawStringInvert(t *testing.T) {
	tile := New(32, 16)
	tile.DrawStringInvert(0, 0, "||", 3, true)
	// Each cell paints its 5×7 box except the stroke column.
	if n := len(setPixels(tile)); n != 2*(5*7-7) {
		t.Fatalf("inverted text set %d pixels, want %d", n, 2*(5*7-7))
	}
	if tile.At(2, 3) != 0 || tile.At(1, 3) != 3 {
		t.Fatalf("inverted glyph wrong")
	}
}

func TestDrawString(t *testing.T) {
	tile := New(32, 16)
	tile.DrawString(1, 2, "|", 0xf800)
	for y := 2; y < 9; y++ {
		if tile.At(3, y) != 0xf800 {
			t.Fatalf("At(3, %d) = %#x, want 0xf800", y, tile.At(3, y))
		}
	}
	if TextWidth("CH0") != 15 {
		t.Fatalf("TextWidth(CH0) = %d, want 15", TextWidth("CH0"))
	}
}

func TestRGBARoundTrip(t *testing.T) {
	for _, p := range []uint16{0, 0xffff, 0xf800, 0x07e0, 0x001f, 0x4208, 0x1234} {
		c := RGBA(p)
		if got := RGB565(c.R, c.G, c.B); got != p {
			t.Fatalf("RGB565(RGBA(%#x)) = %#x", p, got)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
