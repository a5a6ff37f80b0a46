package gamemap

import "testing"

func TestParseDerivesKinds(t *testing.T) {
	m := Parse([]string{"#.+/█─"})

	cases := []struct {
		x    int
		kind TileKind
		walk bool
	}{
		{0, TileWall, false},
		{1, TileFloor, true},
		{2, TileDoorClosed, true},
		{3, TileDoorOpen, true},
		{4, TileBlocking, false},
		{5, TileWallSegment, false},
	}
	for _, c := range cases {
		tl := m.At(c.x, 0)
		if tl.Kind != c.kind {
			t.Errorf("col %d kind = %v, want %v", c.x, tl.Kind, c.kind)
		}
		if tl.Walkable != c.walk {
			t.Errorf("col %d walkable = %v, want %v", c.x, tl.Walkable, c.walk)
		}
	}
}

func TestParsePadsShortRows(t *testing.T) {
	m := Parse([]string{"###", "#"})

	if m.Width != 3 || m.Height != 2 {
		t.Fatalf("map is %dx%d, want 3x2", m.Width, m.Height)
	}
	if !m.IsWalkable(2, 1) {
		t.Error("padded cell should be walkable floor")
	}
}

func TestIsWalkableOutOfBounds(t *testing.T) {
	m := Parse([]string{"..."})
	if m.IsWalkable(-1, 0) || m.IsWalkable(0, 5) {
		t.Error("out-of-bounds cells must not be walkable")
	}
}

func TestRunesRoundTrip(t *testing.T) {
	rows := []string{"#.#", ".█."}
	m := Parse(rows)
	runes := m.Runes()

	for y, row := range rows {
		for x, r := range []rune(row) {
			if runes[y][x] != r {
				t.Errorf("rune at (%d,%d) = %q, want %q", x, y, runes[y][x], r)
			}
		}
	}
}

func TestSampleMapsParse(t *testing.T) {
	// Every bundled map parses into a rectangle with walkable interior.
	for name, rows := range Samples {
		m := Parse(rows)
		if m.Width == 0 || m.Height == 0 {
			t.Errorf("map %q parsed empty", name)
			continue
		}
		walkable := 0
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				if m.IsWalkable(x, y) {
					walkable++
				}
			}
		}
		if walkable == 0 {
			t.Errorf("map %q has no walkable cells", name)
		}
	}
}
