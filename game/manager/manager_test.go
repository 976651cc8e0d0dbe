package manager

import (
	"testing"

	"gridsnake/game/types"

	"github.com/pkg/errors"
)

func TestOccupancySet(t *testing.T) {
	o := NewOccupancySet(3, 4)
	if !o.Contains(3) || !o.Contains(4) || o.Contains(5) {
		t.Fatal("membership mismatch after construction")
	}
	o.Add(5)
	o.Remove(3)
	if o.Contains(3) || !o.Contains(5) || o.Len() != 2 {
		t.Fatalf("after add/remove: Len() = %d, contains(3)=%v contains(5)=%v", o.Len(), o.Contains(3), o.Contains(5))
	}
	if !o.Equal([]types.Cell{4, 5}) || o.Equal([]types.Cell{4}) || o.Equal([]types.Cell{4, 6}) {
		t.Fatal("Equal mismatch")
	}
}

func TestPlaceAvoidsOccupiedAndExcluded(t *testing.T) {
	fp := NewFoodPlacer(7)
	occ := NewOccupancySet(1, 2, 3, 4, 5)
	for i := 0; i < 500; i++ {
		c, err := fp.Place(occ, 6, 25)
		if err != nil {
			t.Fatal(err)
		}
		if c < 1 || c > 25 || occ.Contains(c) || c == 6 {
			t.Fatalf("Place returned %d", c)
		}
	}
}

func TestPlaceSingleFreeCell(t *testing.T) {
	fp := NewFoodPlacer(1)

	// Seven occupied, one excluded, cell 9 left.
	occ := NewOccupancySet(1, 2, 3, 4, 5, 6, 7)
	for i := 0; i < 10; i++ {
		c, err := fp.Place(occ, 8, 9)
		if err != nil {
			t.Fatal(err)
		}
		if c != 9 {
			t.Fatalf("Place = %d, want 9", c)
		}
	}

	// Exclusion is an occupied cell; only cell 2 is free.
	occ = NewOccupancySet(1, 3, 4)
	if c, err := fp.Place(occ, 3, 4); err != nil || c != 2 {
		t.Fatalf("Place = %d, %v; want 2, nil", c, err)
	}
}

func TestPlaceBoardFull(t *testing.T) {
	fp := NewFoodPlacer(1)

	occ := NewOccupancySet(1, 2, 3, 4)
	if _, err := fp.Place(occ, types.NoCell, 4); !errors.Is(err, types.ErrBoardFull) {
		t.Fatalf("full board: err = %v, want ErrBoardFull", err)
	}

	occ = NewOccupancySet(1, 2, 3)
	if _, err := fp.Place(occ, 4, 4); !errors.Is(err, types.ErrBoardFull) {
		t.Fatalf("only excluded cell free: err = %v, want ErrBoardFull", err)
	}
}

func TestPlaceIsDeterministicPerSeed(t *testing.T) {
	a, b := NewFoodPlacer(42), NewFoodPlacer(42)
	occ := NewOccupancySet(10, 11, 12)
	for i := 0; i < 20; i++ {
		ca, _ := a.Place(occ, 13, 400)
		cb, _ := b.Place(occ, 13, 400)
		if ca != cb {
			t.Fatalf("placement %d diverged: %d vs %d", i, ca, cb)
		}
	}
}

func TestSpeedFollowsScoreTable(t *testing.T) {
	sm := NewScoreManager()
	got := []int{sm.Interval()}
	for i := 0; i < 6; i++ {
		sm.Add()
		got = append(got, sm.Interval())
	}
	want := []int{150, 150, 150, 150, 150, 150, 130}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("intervals = %v, want %v", got, want)
		}
	}
}

func TestNextInterval(t *testing.T) {
	tests := []struct {
		score, current, want int
	}{
		{0, 150, 150},
		{5, 150, 150},
		{6, 150, 130},
		{9, 130, 130},
		{31, 130, 130}, // first matching step wins
		{3, 90, 90},    // below every threshold keeps the current value
	}
	for _, tt := range tests {
		if got := NextInterval(tt.score, tt.current); got != tt.want {
			t.Errorf("NextInterval(%d, %d) = %d, want %d", tt.score, tt.current, got, tt.want)
		}
	}
}

func TestScoreManagerHistory(t *testing.T) {
	sm := NewScoreManager()
	for i := 0; i < 7; i++ {
		sm.Add()
	}
	sm.Record()
	sm.Reset()
	sm.Add()
	sm.Record()

	if sm.Score() != 1 || sm.Interval() != 150 {
		t.Fatalf("after reset: score %d interval %d, want 1 and 150", sm.Score(), sm.Interval())
	}
	if sm.HighScore() != 7 {
		t.Fatalf("HighScore() = %d, want 7", sm.HighScore())
	}
	h := sm.ScoreHistory()
	if len(h) != 2 || h[0] != 7 || h[1] != 1 {
		t.Fatalf("ScoreHistory() = %v, want [7 1]", h)
	}
}
