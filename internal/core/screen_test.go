package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-5, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("size = %dx%d, expected 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() = %q, expected empty", s.String())
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	want := Cell{Rune: '3', Fg: ColorRed, Bg: ColorGray}
	s.SetCell(5, 4, want)
	if got := s.GetCell(5, 4); got != want {
		t.Errorf("GetCell(5, 4) = %+v, expected %+v", got, want)
	}
	if s.Get(5, 4) != '3' {
		t.Errorf("Get(5, 4) = %q, expected '3'", s.Get(5, 4))
	}

	s.Set(1, 1, 'X')
	if got := s.GetCell(1, 1); got.Fg != ColorDefault || got.Bg != ColorDefault {
		t.Errorf("Set should use default colors, got %+v", got)
	}

	// Out of bounds writes are ignored
	for _, p := range []Point{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.Set(p.X, p.Y, 'A')
		if s.Get(p.X, p.Y) != ' ' {
			t.Errorf("Get(%d, %d) out of bounds should return space", p.X, p.Y)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRect(s.Bounds(), Cell{Rune: '#', Fg: ColorBlue})

	s.Clear()

	for y := range 3 {
		for x := range 4 {
			if s.GetCell(x, y) != blank {
				t.Errorf("after Clear, (%d, %d) = %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawStyledText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawStyledText(2, 1, "Hello", ColorGreen, ColorBlack)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Fg != ColorGreen || c.Bg != ColorBlack {
			t.Errorf("cell %d = %+v, expected %q green on black", i, c, ch)
		}
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at the right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "▒▒x")

	if s.Get(0, 0) != '▒' || s.Get(1, 0) != '▒' || s.Get(2, 0) != 'x' {
		t.Errorf("Row(0) = %q, expected one cell per rune", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorYellow)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("centered text not at x=%d: %q", x, s.Row(2))
	}
	if s.GetCell(x, 2).Fg != ColorYellow {
		t.Errorf("centered text color = %v, expected yellow", s.GetCell(x, 2).Fg)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), Cell{Rune: '#'})

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Fg != ColorGray {
		t.Errorf("box color = %v, expected gray", s.GetCell(1, 1).Fg)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawStyledText(0, 1, "BBBBB", ColorRed, ColorDefault)
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if s.Row(5) != strings.Repeat(" ", 15) {
		t.Errorf("rows cut by the shrink should come back blank, row 5 = %q", s.Row(5))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") || len(row) != 10 {
		t.Errorf("Row(2) = %q", row)
	}
	if s.Row(-1) != "          " {
		t.Errorf("out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
