package index

import (
	"testing"

	"vnaplot/plot/trace"
)

var testLayout = Layout{Width: 291, Height: 233, GridY: 29, CellOffsetX: 5}

func TestPackRoundTrip(t *testing.T) {
	for x := 0; x < 320; x += 7 {
		for y := 0; y < 240; y += 5 {
			for _, n := range []int{0, 1, 100, 200, OrderMax} {
				p := Pack(x, y, n)
				if got := p.Unpack(); got != (Fields{X: x, Y: y, Order: n}) {
					t.Fatalf("Pack(%d, %d, %d).Unpack() = %+v", x, y, n, got)
				}
			}
		}
	}
}

func TestPackFieldsMatchesPack(t *testing.T) {
	f := Fields{X: 133, Y: 77, Order: 42}
	if PackFields(f) != Pack(133, 77, 42) {
		t.Fatalf("PackFields() != Pack()")
	}
	p := PackFields(f)
	if p.Col() != 4 || p.Row() != 2 {
		t.Fatalf("Col/Row = %d/%d, want 4/2", p.Col(), p.Row())
	}
	if p.TileX0() != 128 || p.TileY0() != 64 {
		t.Fatalf("TileX0/TileY0 = %d/%d, want 128/64", p.TileX0(), p.TileY0())
	}
}

func TestTileKeyOrdering(t *testing.T) {
	// Order and in-tile position must not influence the key order.
	a := Pack(31, 200, OrderMax)
	b := Pack(32, 0, 0)
	if !(a.TileKey() < b.TileKey()) {
		t.Fatalf("TileKey(col 0) >= TileKey(col 1)")
	}
	c := Pack(40, 31, 9)
	d := Pack(33, 32, 1)
	if !(c.TileKey() < d.TileKey()) {
		t.Fatalf("TileKey(row 0) >= TileKey(row 1) in the same column")
	}
	if Pack(10, 10, 1).TileKey() != Pack(20, 30, 150).TileKey() {
		t.Fatalf("same tile yields different keys")
	}
	if ColumnKey(5) != Pack(5*TileSize, 0, 0).TileKey() {
		t.Fatalf("ColumnKey(5) mismatch")
	}
}

func TestComputeLogMagScenario(t *testing.T) {
	tr := trace.Trace{Enabled: true, Type: trace.LogMag, Scale: 10, RefPos: 5}
	data := make([]complex64, 11)
	for i := range data {
		data[i] = complex(0.5, 0)
	}
	var y0 int
	for i := range data {
		x := testLayout.ColumnX(i, len(data))
		p := testLayout.Compute(x, &tr, data, i, nil)
		if p.X() != x+testLayout.CellOffsetX {
			t.Fatalf("X() = %d, want %d", p.X(), x+testLayout.CellOffsetX)
		}
		if p.Order() != i {
			t.Fatalf("Order() = %d, want %d", p.Order(), i)
		}
		if i == 0 {
			y0 = p.Y()
		} else if p.Y() != y0 {
			t.Fatalf("sample %d Y() = %d, want %d", i, p.Y(), y0)
		}
	}
	if y0 != 104 {
		t.Fatalf("Y() = %d, want 104", y0)
	}
}

func TestComputeClampsVertical(t *testing.T) {
	tr := trace.Trace{Type: trace.LogMag, Scale: 1, RefPos: 8}
	data := []complex64{complex(10, 0), 0}
	if got := testLayout.Compute(0, &tr, data, 0, nil).Y(); got != 0 {
		t.Fatalf("Y(above) = %d, want 0", got)
	}
	if got := testLayout.Compute(0, &tr, data, 1, nil).Y(); got != 8*testLayout.GridY {
		t.Fatalf("Y(below) = %d, want %d", got, 8*testLayout.GridY)
	}
}

func TestComputeSmith(t *testing.T) {
	tr := trace.Trace{Type: trace.Smith, Scale: 1}
	data := []complex64{complex(0.5, 0), complex(3, -3)}
	r := testLayout.Radius()

	p := testLayout.Compute(0, &tr, data, 0, nil)
	wantX := testLayout.Width/2 + r/2 + testLayout.CellOffsetX
	if p.X() != wantX || p.Y() != testLayout.Height/2 {
		t.Fatalf("Compute(0.5) = (%d, %d), want (%d, %d)", p.X(), p.Y(), wantX, testLayout.Height/2)
	}

	p = testLayout.Compute(0, &tr, data, 1, nil)
	if p.X() != testLayout.Width/2+r+testLayout.CellOffsetX || p.Y() != testLayout.Height/2+r {
		t.Fatalf("Compute(clamped) = (%d, %d)", p.X(), p.Y())
	}
}

func TestColumnX(t *testing.T) {
	if got := testLayout.ColumnX(100, 101); got != testLayout.Width-1 {
		t.Fatalf("ColumnX(last) = %d, want %d", got, testLayout.Width-1)
	}
	if got := testLayout.ColumnX(0, 1); got != 0 {
		t.Fatalf("ColumnX(single) = %d, want 0", got)
	}
}
