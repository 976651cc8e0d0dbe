package game

import (
	"flag"
	"time"

	"gridsnake/game/types"

	"github.com/pkg/errors"
)

// Config holds the parameters of one game session.
type Config struct {
	Size     int           // Board side length in cells
	Walls    bool          // Edges end the game instead of wrapping
	Strict   bool          // Also refuse reversing the last completed move
	Seed     uint64        // Food RNG seed, 0 seeds from the clock
	TimeUnit time.Duration // Duration of one speed table unit
}

// DefaultConfig returns the configuration of the classic board.
func DefaultConfig() Config {
	return Config{Size: 20, TimeUnit: time.Millisecond}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "board side length in cells")
	fs.BoolVar(&c.Walls, "walls", c.Walls, "end the game at the board edge instead of wrapping")
	fs.BoolVar(&c.Strict, "strict-turns", c.Strict, "refuse turns that reverse the last move even if the direction changed since")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "food placement seed (0 = from clock)")
	fs.DurationVar(&c.TimeUnit, "unit", c.TimeUnit, "duration of one speed unit")
}

func (c Config) Validate() error {
	if c.Size < 1 {
		return errors.Wrapf(types.ErrInvalidConfig, "size %d, must be at least 1", c.Size)
	}
	if c.TimeUnit <= 0 {
		return errors.Wrapf(types.ErrInvalidConfig, "time unit %v, must be positive", c.TimeUnit)
	}
	return nil
}
