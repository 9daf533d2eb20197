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
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '#', ColorGreen)
	cell := s.GetCell(3, 4)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("GetCell(3, 4) = %+v, expected '#' green", cell)
	}

	s.Set(3, 4, 'X')
	if s.GetCell(3, 4).Color != ColorDefault {
		t.Error("Set should reset color to default")
	}

	// Out of bounds is silent
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)
	if got := s.GetCell(100, 0); got.Rune != ' ' {
		t.Errorf("out of bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)

	s.DrawTextColored(2, 1, "Hi ★", ColorYellow)
	if got := s.Row(1); !strings.HasPrefix(got, "  Hi ★") {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(5, 1).Rune != '★' || s.GetCell(5, 1).Color != ColorYellow {
		t.Errorf("multi-byte rune should occupy one cell, got %+v", s.GetCell(5, 1))
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "long")
	if s.Get(19, 0) != 'o' {
		t.Errorf("expected clipped text, got %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)
	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenFillRectAndBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillRect(NewRect(1, 1, 2, 2), '▓', ColorRed)
	if s.Get(1, 1) != '▓' || s.Get(2, 2) != '▓' || s.Get(3, 1) != ' ' {
		t.Errorf("unexpected fill:\n%s", s.String())
	}

	s.Clear()
	s.DrawBox(NewRect(0, 0, 6, 4), ColorDefault)
	expected := "┌────┐\n│    │\n│    │\n└────┘"
	if s.String() != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", s.String(), expected)
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X')
	s.Resize(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear content")
	}
	if len(s.Row(2)) != 8 {
		t.Errorf("Row(2) length = %d, expected 8", len(s.Row(2)))
	}
}
