package sweeper

import "testing"

func TestNewMatrixStartsEmpty(t *testing.T) {
	m := NewMatrix(4)

	if m.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", m.Size())
	}
	for y := range 4 {
		for x := range 4 {
			if m.Get(x, y) {
				t.Errorf("Get(%d, %d) = true on a new matrix", x, y)
			}
		}
	}
	if m.Count() != 0 {
		t.Errorf("Count() = %d, want 0", m.Count())
	}
}

func TestMatrixSetGetUsesColumnRow(t *testing.T) {
	m := NewMatrix(3)
	m.Set(2, 0, true)

	if !m.Get(2, 0) {
		t.Error("Get(2, 0) = false after Set(2, 0, true)")
	}
	if m.Get(0, 2) {
		t.Error("Get(0, 2) = true; axes are swapped")
	}

	coords := m.Coordinates()
	if len(coords) != 1 || coords[0] != (Coordinate{X: 2, Y: 0}) {
		t.Errorf("Coordinates() = %v, want [(2,0)]", coords)
	}
}

func TestMatrixGetSafe(t *testing.T) {
	m := NewMatrix(3)
	m.Set(1, 1, true)

	tests := []struct {
		name      string
		x, y      int
		wantValue bool
		wantOK    bool
	}{
		{"inside mine", 1, 1, true, true},
		{"inside empty", 0, 2, false, true},
		{"left of grid", -1, 0, false, false},
		{"above grid", 0, -1, false, false},
		{"right of grid", 3, 0, false, false},
		{"below grid", 0, 3, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := m.GetSafe(tc.x, tc.y)
			if v != tc.wantValue || ok != tc.wantOK {
				t.Errorf("GetSafe(%d, %d) = (%v, %v), want (%v, %v)",
					tc.x, tc.y, v, ok, tc.wantValue, tc.wantOK)
			}
		})
	}
}

func TestMatrixNeighbors(t *testing.T) {
	m := NewMatrix(3)

	tests := []struct {
		name string
		c    Coordinate
		want int
	}{
		{"corner", Coordinate{0, 0}, 3},
		{"edge", Coordinate{1, 0}, 5},
		{"center", Coordinate{1, 1}, 8},
		{"far corner", Coordinate{2, 2}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := m.Neighbors(tc.c)
			if len(got) != tc.want {
				t.Fatalf("Neighbors(%v) returned %d cells, want %d", tc.c, len(got), tc.want)
			}
			for _, n := range got {
				if n == tc.c {
					t.Errorf("Neighbors(%v) includes the cell itself", tc.c)
				}
				if !m.InBounds(n.X, n.Y) {
					t.Errorf("Neighbors(%v) includes out-of-bounds %v", tc.c, n)
				}
			}
		})
	}

	corner := m.Neighbors(Coordinate{0, 0})
	want := []Coordinate{{1, 0}, {0, 1}, {1, 1}}
	for i := range want {
		if corner[i] != want[i] {
			t.Errorf("Neighbors((0,0))[%d] = %v, want %v", i, corner[i], want[i])
		}
	}
}

func TestMatrixCountAroundClipsEdges(t *testing.T) {
	m := NewMatrix(3)
	for _, c := range []Coordinate{{0, 0}, {1, 0}, {2, 0}, {0, 1}} {
		m.Set(c.X, c.Y, true)
	}

	tests := []struct {
		x, y int
		want int
	}{
		{1, 1, 4},
		{0, 0, 2}, // itself is not counted
		{2, 2, 0},
		{0, 2, 1},
		{2, 1, 2},
	}

	for _, tc := range tests {
		if got := m.countAround(tc.x, tc.y); got != tc.want {
			t.Errorf("countAround(%d, %d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}
