package types

import "testing"

func TestOppositeIsInvolution(t *testing.T) {
	for d := UP; d <= LEFT; d++ {
		if d.Opposite() == d {
			t.Errorf("%v is its own opposite", d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite(Opposite(%v)) = %v", d, d.Opposite().Opposite())
		}
	}
	if NONE.Opposite() != NONE {
		t.Errorf("NONE.Opposite() = %v, want NONE", NONE.Opposite())
	}
}

func TestTurnsAreInverse(t *testing.T) {
	for d := UP; d <= LEFT; d++ {
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("TurnLeft then TurnRight of %v = %v", d, d.TurnLeft().TurnRight())
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"ArrowUp":    UP,
		"ArrowRight": RIGHT,
		"ArrowDown":  DOWN,
		"ArrowLeft":  LEFT,
		"w":          UP,
		"D":          RIGHT,
		"j":          DOWN,
		"left":       LEFT,
		"Enter":      NONE,
		"":           NONE,
	}
	for key, want := range tests {
		if got := ParseDirection(key); got != want {
			t.Errorf("ParseDirection(%q) = %v, want %v", key, got, want)
		}
	}
}
