package games

import (
	"math/rand/v2"

	"github.com/vytor/braingym/internal/errors"
	"github.com/vytor/braingym/internal/generator"
	"github.com/vytor/braingym/internal/models"
)

const (
	reflexSeconds = 30
	reflexPenalty = 10
)

// ReflexHand is rock-paper-scissors played after the opponent, under an
// instruction to win, lose or draw.
type ReflexHand struct {
	countdown
	rnd   *rand.Rand
	score score
	round models.ReflexRound
}

func NewReflexHand(r *rand.Rand) *ReflexHand {
	return &ReflexHand{
		countdown: countdown{seconds: reflexSeconds},
		rnd:       r,
	}
}

func (g *ReflexHand) ID() models.GameID { return models.GameReflexHand }

func (g *ReflexHand) Start() {
	g.score = 0
	g.countdown.reset()
	g.next()
}

func (g *ReflexHand) next() {
	g.round = generator.ReflexRound(g.rnd)
}

func (g *ReflexHand) Handle(cmd models.Command) error {
	if cmd.Action != models.ActionSubmit {
		return errors.NewBadRequestError("rock-paper-scissors accepts only submit")
	}
	if cmd.Hand == nil {
		return errors.NewValidationError("hand", "required")
	}
	hand := models.Hand(*cmd.Hand)
	if !hand.Valid() {
		return errors.NewValidationError("hand", "must be 0 (rock), 1 (scissors) or 2 (paper)")
	}
	g.Submit(hand)
	return nil
}

// Submit plays hand against the current round. A new round is dealt either way.
func (g *ReflexHand) Submit(hand models.Hand) {
	if !g.active {
		return
	}
	if g.round.Instruction.Satisfied(hand, g.round.Opponent) {
		g.score.add(correctReward)
	} else {
		g.score.penalize(reflexPenalty)
	}
	g.next()
}

func (g *ReflexHand) Score() int { return int(g.score) }

// Round returns the round currently on screen.
func (g *ReflexHand) Round() models.ReflexRound { return g.round }

func (g *ReflexHand) Snapshot() models.GameSnapshot {
	snap := g.countdown.snapshot(g.ID(), g.score)
	snap.Reflex = &models.ReflexView{
		Opponent:    g.round.Opponent,
		Instruction: g.round.Instruction.String(),
	}
	return snap
}
