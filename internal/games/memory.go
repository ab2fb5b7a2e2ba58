package games

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/vytor/braingym/internal/clock"
	"github.com/vytor/braingym/internal/errors"
	"github.com/vytor/braingym/internal/generator"
	"github.com/vytor/braingym/internal/models"
)

const (
	successPause    = 800 * time.Millisecond
	minShowDuration = 600 * time.Millisecond
)

// ShowDuration is how long the sequence stays lit at the given level.
func ShowDuration(level int) time.Duration {
	return max(time.Duration(1200-50*level)*time.Millisecond, minShowDuration)
}

// SequenceMemory lights up cells of a 3x3 grid and asks the player to tap
// them back. It has no countdown: the first wrong cell ends the game.
type SequenceMemory struct {
	rnd       *rand.Rand
	scheduler clock.Scheduler
	onOver    func(score int)

	state    models.MemoryState
	level    int
	score    score
	sequence []int
	tapped   []int
	pending  clock.Timer
}

func NewSequenceMemory(r *rand.Rand, s clock.Scheduler, onOver func(score int)) *SequenceMemory {
	return &SequenceMemory{
		rnd:       r,
		scheduler: s,
		onOver:    onOver,
		state:     models.MemoryIdle,
	}
}

func (g *SequenceMemory) ID() models.GameID { return models.GameSequenceMemory }

func (g *SequenceMemory) Start() {
	g.score = 0
	g.level = 1
	g.startLevel(1)
}

func (g *SequenceMemory) startLevel(level int) {
	g.sequence = generator.MemorySequence(g.rnd, level)
	g.tapped = g.tapped[:0]
	g.state = models.MemoryShowing
	g.schedule(ShowDuration(level), func() {
		if g.state == models.MemoryShowing {
			g.state = models.MemoryPlaying
		}
	})
}

func (g *SequenceMemory) schedule(d time.Duration, fn func()) {
	clock.Stop(g.pending)
	g.pending = g.scheduler.AfterFunc(d, func() {
		g.pending = nil
		fn()
	})
}

func (g *SequenceMemory) Handle(cmd models.Command) error {
	if cmd.Action != models.ActionTap {
		return errors.NewBadRequestError("sequence memory accepts only tap")
	}
	if cmd.Cell == nil {
		return errors.NewValidationError("cell", "required")
	}
	g.Tap(*cmd.Cell)
	return nil
}

// Tap presses a cell. Taps outside the playing phase and repeated taps on
// an already found cell are ignored.
func (g *SequenceMemory) Tap(cell int) {
	if g.state != models.MemoryPlaying {
		return
	}
	if !slices.Contains(g.sequence, cell) {
		g.finish()
		return
	}
	if slices.Contains(g.tapped, cell) {
		return
	}
	g.tapped = append(g.tapped, cell)
	if len(g.tapped) < len(g.sequence) {
		return
	}

	g.score.add(correctReward * len(g.sequence))
	g.state = models.MemorySuccess
	g.schedule(successPause, func() {
		if g.state != models.MemorySuccess {
			return
		}
		g.level++
		g.startLevel(g.level)
	})
}

func (g *SequenceMemory) finish() {
	g.Stop()
	if g.onOver != nil {
		g.onOver(int(g.score))
	}
}

// Stop cancels any pending phase change and returns the game to idle.
func (g *SequenceMemory) Stop() {
	clock.Stop(g.pending)
	g.pending = nil
	g.state = models.MemoryIdle
}

func (g *SequenceMemory) Score() int { return int(g.score) }

func (g *SequenceMemory) Active() bool { return g.state != models.MemoryIdle }

func (g *SequenceMemory) State() models.MemoryState { return g.state }

func (g *SequenceMemory) Level() int { return g.level }

// Sequence returns the cells to remember at the current level.
func (g *SequenceMemory) Sequence() []int { return slices.Clone(g.sequence) }

func (g *SequenceMemory) Snapshot() models.GameSnapshot {
	view := &models.MemoryView{
		State:  g.state,
		Level:  g.level,
		Tapped: slices.Clone(g.tapped),
	}
	if view.Tapped == nil {
		view.Tapped = []int{}
	}
	if g.state == models.MemoryShowing {
		view.Sequence = slices.Clone(g.sequence)
	}
	return models.GameSnapshot{
		GameID: g.ID(),
		Score:  int(g.score),
		Active: g.Active(),
		Memory: view,
	}
}
