package games

import (
	"math/rand/v2"
	"slices"

	"github.com/vytor/braingym/internal/errors"
	"github.com/vytor/braingym/internal/generator"
	"github.com/vytor/braingym/internal/models"
)

const (
	sequentialSeconds = 40
	// GridMax is the highest number on the sequential-tap grid.
	GridMax       = 16
	clearBonus    = 20
	sequentialHit = 1
)

// SequentialTap asks the player to tap 1..GridMax in order on a shuffled grid.
type SequentialTap struct {
	countdown
	rnd    *rand.Rand
	score  score
	grid   []int
	target int
}

func NewSequentialTap(r *rand.Rand) *SequentialTap {
	return &SequentialTap{
		countdown: countdown{seconds: sequentialSeconds},
		rnd:       r,
	}
}

func (g *SequentialTap) ID() models.GameID { return models.GameSequentialTap }

func (g *SequentialTap) Start() {
	g.score = 0
	g.countdown.reset()
	g.deal()
}

func (g *SequentialTap) deal() {
	g.grid = generator.TapGrid(g.rnd, GridMax)
	g.target = 1
}

func (g *SequentialTap) Handle(cmd models.Command) error {
	if cmd.Action != models.ActionTap {
		return errors.NewBadRequestError("number tap accepts only tap")
	}
	if cmd.Number == nil {
		return errors.NewValidationError("number", "required")
	}
	g.Tap(*cmd.Number)
	return nil
}

// Tap presses number on the grid. Anything but the current target is ignored.
func (g *SequentialTap) Tap(number int) {
	if !g.active || number != g.target {
		return
	}
	g.score.add(sequentialHit)
	if g.target == GridMax {
		g.score.add(clearBonus)
		g.deal()
		return
	}
	g.target++
}

func (g *SequentialTap) Score() int { return int(g.score) }

// Target is the next number to tap.
func (g *SequentialTap) Target() int { return g.target }

// Grid returns the current board layout.
func (g *SequentialTap) Grid() []int { return slices.Clone(g.grid) }

func (g *SequentialTap) Snapshot() models.GameSnapshot {
	snap := g.countdown.snapshot(g.ID(), g.score)
	snap.Tap = &models.TapView{
		Grid:   slices.Clone(g.grid),
		Target: g.target,
	}
	return snap
}
