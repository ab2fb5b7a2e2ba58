package games

import (
	"math/rand/v2"

	"github.com/vytor/braingym/internal/errors"
	"github.com/vytor/braingym/internal/generator"
	"github.com/vytor/braingym/internal/models"
)

const (
	congruenceSeconds = 30
	congruencePenalty = 10
)

// Congruence asks whether a color word is printed in its own color.
type Congruence struct {
	countdown
	rnd   *rand.Rand
	score score
	round models.CongruenceRound
}

func NewCongruence(r *rand.Rand) *Congruence {
	return &Congruence{
		countdown: countdown{seconds: congruenceSeconds},
		rnd:       r,
	}
}

func (g *Congruence) ID() models.GameID { return models.GameCongruence }

func (g *Congruence) Start() {
	g.score = 0
	g.countdown.reset()
	g.next()
}

func (g *Congruence) next() {
	g.round = generator.CongruenceRound(g.rnd)
}

func (g *Congruence) Handle(cmd models.Command) error {
	if cmd.Action != models.ActionSubmit {
		return errors.NewBadRequestError("color judgment accepts only submit")
	}
	if cmd.Match == nil {
		return errors.NewValidationError("match", "required")
	}
	g.Submit(*cmd.Match)
	return nil
}

// Submit judges the current round. A new round is dealt either way.
func (g *Congruence) Submit(claimsMatch bool) {
	if !g.active {
		return
	}
	if claimsMatch == g.round.IsMatch {
		g.score.add(correctReward)
	} else {
		g.score.penalize(congruencePenalty)
	}
	g.next()
}

func (g *Congruence) Score() int { return int(g.score) }

// Round returns the round currently on screen.
func (g *Congruence) Round() models.CongruenceRound { return g.round }

func (g *Congruence) Snapshot() models.GameSnapshot {
	snap := g.countdown.snapshot(g.ID(), g.score)
	snap.Congruence = &models.CongruenceView{
		Word: g.round.Word.Word,
		Ink:  g.round.Ink.Ink,
	}
	return snap
}
