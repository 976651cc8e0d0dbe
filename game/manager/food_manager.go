package manager

import (
	"gridsnake/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// MaxPlacementAttempts bounds the random probes before falling back to a
// scan of the free cells.
const MaxPlacementAttempts = 64

// FoodPlacer picks food cells uniformly among the free cells of the board.
type FoodPlacer struct {
	rng *rand.Rand
}

func NewFoodPlacer(seed uint64) *FoodPlacer {
	return &FoodPlacer{rng: rand.New(rand.NewSource(seed))}
}

// Place returns a random cell in [1, maxCell] that is neither occupied nor
// equal to exclude. It fails with types.ErrBoardFull when no such cell exists.
func (fp *FoodPlacer) Place(occ *OccupancySet, exclude, maxCell types.Cell) (types.Cell, error) {
	free := int(maxCell) - occ.Len()
	if exclude >= 1 && exclude <= maxCell && !occ.Contains(exclude) {
		free--
	}
	if free <= 0 {
		return types.NoCell, errors.Wrapf(types.ErrBoardFull, "no free cell among %d", maxCell)
	}

	if free > 1 {
		for i := 0; i < MaxPlacementAttempts; i++ {
			c := types.Cell(fp.rng.Intn(int(maxCell)) + 1)
			if !occ.Contains(c) && c != exclude {
				return c, nil
			}
		}
	}

	// Nearly full board: pick the k-th free cell directly
	k := 0
	if free > 1 {
		k = fp.rng.Intn(free)
	}
	for c := types.Cell(1); c <= maxCell; c++ {
		if occ.Contains(c) || c == exclude {
			continue
		}
		if k == 0 {
			return c, nil
		}
		k--
	}
	return types.NoCell, errors.Wrapf(types.ErrBoardFull, "no free cell among %d", maxCell)
}
