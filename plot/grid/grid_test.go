package grid

import "testing"

const gridColor = 0x4208

var testChart = Chart{CenterX: 146, CenterY: 116, Radius: 116, Color: gridColor}

func TestCircleInOut(t *testing.T) {
	cases := []struct {
		x, y, r int
		want    int
	}{
		{0, 0, 10, 1},
		{9, 0, 10, 1},
		{10, 0, 10, 0},
		{0, -10, 10, 0},
		{6, 8, 10, 0},
		{11, 0, 10, -1},
		{8, 8, 10, -1},
	}
	for _, c := range cases {
		if got := CircleInOut(c.x, c.y, c.r); got != c.want {
			t.Fatalf("CircleInOut(%d, %d, %d) = %d, want %d", c.x, c.y, c.r, got, c.want)
		}
	}
}

func TestChartsMirrorAcrossHorizontalAxis(t *testing.T) {
	gens := map[string]func(x, y int) uint16{
		"smith":      testChart.Smith,
		"polar":      testChart.Polar,
		"admittance": testChart.Admittance,
	}
	for name, g := range gens {
		for x := 0; x <= 291; x++ {
			for dy := 0; dy <= 116; dy++ {
				a := g(x, testChart.CenterY+dy)
				b := g(x, testChart.CenterY-dy)
				if a != b {
					t.Fatalf("%s(%d, ±%d) = %#x/%#x, want equal", name, x, dy, a, b)
				}
			}
		}
	}
}

func TestChartsDeterministic(t *testing.T) {
	for x := 0; x < 300; x += 3 {
		for y := 0; y < 233; y += 3 {
			if testChart.Smith(x, y) != testChart.Smith(x, y) ||
				testChart.Polar(x, y) != testChart.Polar(x, y) ||
				testChart.Admittance(x, y) != testChart.Admittance(x, y) {
				t.Fatalf("grid at (%d, %d) not deterministic", x, y)
			}
		}
	}
}

func TestSmithLandmarks(t *testing.T) {
	cx, cy, r := testChart.CenterX, testChart.CenterY, testChart.Radius
	cases := []struct {
		name string
		x, y int
		want uint16
	}{
		{"center on real axis", cx, cy, gridColor},
		{"outer circle right", cx + r, cy, gridColor},
		{"outer circle top", cx, cy - r, gridColor},
		{"outside", 0, 0, 0},
		{"inside r=1 disc", cx + 30, cy - 3, 0},
		{"r=1 circle through center", cx, cy - 1, gridColor},
	}
	for _, c := range cases {
		if got := testChart.Smith(c.x, c.y); got != c.want {
			t.Fatalf("Smith(%s) = %#x, want %#x", c.name, got, c.want)
		}
	}
}

func TestPolarLandmarks(t *testing.T) {
	cx, cy, r := testChart.CenterX, testChart.CenterY, testChart.Radius
	if got := testChart.Polar(cx, cy-50); got != gridColor {
		t.Fatalf("Polar(vertical axis) = %#x, want grid", got)
	}
	if got := testChart.Polar(cx+r/5, cy+1); got != gridColor {
		t.Fatalf("Polar(first ring) = %#x, want grid", got)
	}
	if got := testChart.Polar(cx+10, cy+5); got != 0 {
		t.Fatalf("Polar(inside first ring) = %#x, want 0", got)
	}
	if got := testChart.Polar(cx+60, cy+60); got != gridColor {
		t.Fatalf("Polar(diagonal) = %#x, want grid", got)
	}
}

func TestRectUpdate(t *testing.T) {
	g := Rect{Width: 291, GridY: 29, Color: gridColor}

	g.Update(0, 1000000000)
	if g.Step() != 200000000 || g.Offset() != 0 || g.Spacing() != 580 {
		t.Fatalf("Update(0, 1G) = step %d offset %d spacing %d", g.Step(), g.Offset(), g.Spacing())
	}
	if g.X(58, 0) != gridColor || g.X(57, 0) != 0 {
		t.Fatalf("X() lines not at 58 px spacing")
	}

	g.Update(50000000, 100000000)
	if g.Step() != 20000000 || g.Offset() != 29 || g.Spacing() != 580 {
		t.Fatalf("Update(50M, 100M) = step %d offset %d spacing %d", g.Step(), g.Offset(), g.Spacing())
	}
	if g.X(29, 0) != gridColor {
		t.Fatalf("X(29) = 0, want a line after the offset")
	}

	g.Update(0, 3000)
	if g.Step() != 1000 {
		t.Fatalf("Update(0, 3k) step = %d, want 1000", g.Step())
	}
}

func TestRectFrameAndRows(t *testing.T) {
	g := Rect{Width: 291, GridY: 29, Color: gridColor}
	g.Update(0, 0)
	if g.X(0, 1) != gridColor || g.X(291, 1) != gridColor {
		t.Fatalf("frame columns not drawn")
	}
	if g.X(-1, 7) != 7 || g.X(100, 7) != 7 {
		t.Fatalf("X() without span should only draw the frame")
	}
	for y := 0; y <= 232; y++ {
		want := uint16(3)
		if y%29 == 0 {
			want = gridColor
		}
		if got := g.Y(y, 3); got != want {
			t.Fatalf("Y(%d) = %#x, want %#x", y, got, want)
		}
	}
}

func TestSweepForms(t *testing.T) {
	s := CenterSpan(100000000, 20000000)
	if !s.IsCenterSpan() || s.Start() != 90000000 || s.Stop() != 110000000 || s.Span() != 20000000 {
		t.Fatalf("CenterSpan() = start %d stop %d span %d", s.Start(), s.Stop(), s.Span())
	}
	s = StartStop(10, 30)
	if s.Center() != 20 || s.Span() != 20 || s.FrequencyAt(2, 3) != 30 {
		t.Fatalf("StartStop() center %d span %d", s.Center(), s.Span())
	}
	s = CW(5)
	if !s.IsCW() || s.Span() != 0 || s.FrequencyAt(3, 10) != 5 {
		t.Fatalf("CW() span %d", s.Span())
	}
}
