package games

import (
	"math/rand/v2"
	"slices"

	"github.com/vytor/braingym/internal/errors"
	"github.com/vytor/braingym/internal/generator"
	"github.com/vytor/braingym/internal/models"
)

const (
	arithmeticSeconds = 30
	arithmeticPenalty = 5
)

// Arithmetic is the multiple-choice mental arithmetic quiz. A wrong answer
// costs points but keeps the same problem on screen.
type Arithmetic struct {
	countdown
	rnd     *rand.Rand
	score   score
	problem models.ArithmeticProblem
}

func NewArithmetic(r *rand.Rand) *Arithmetic {
	return &Arithmetic{
		countdown: countdown{seconds: arithmeticSeconds},
		rnd:       r,
	}
}

func (g *Arithmetic) ID() models.GameID { return models.GameArithmetic }

func (g *Arithmetic) Start() {
	g.score = 0
	g.countdown.reset()
	g.next()
}

func (g *Arithmetic) next() {
	g.problem = generator.ArithmeticProblem(g.rnd)
}

func (g *Arithmetic) Handle(cmd models.Command) error {
	if cmd.Action != models.ActionSubmit {
		return errors.NewBadRequestError("arithmetic accepts only submit")
	}
	if cmd.Value == nil {
		return errors.NewValidationError("value", "required")
	}
	g.Submit(*cmd.Value)
	return nil
}

// Submit answers the current problem. It is ignored once time is up.
func (g *Arithmetic) Submit(value int) {
	if !g.active {
		return
	}
	if value == g.problem.Answer {
		g.score.add(correctReward)
		g.next()
		return
	}
	g.score.penalize(arithmeticPenalty)
}

func (g *Arithmetic) Score() int { return int(g.score) }

// Problem returns the problem currently on screen.
func (g *Arithmetic) Problem() models.ArithmeticProblem { return g.problem }

func (g *Arithmetic) Snapshot() models.GameSnapshot {
	snap := g.countdown.snapshot(g.ID(), g.score)
	snap.Arithmetic = &models.ArithmeticView{
		Question: g.problem.Question(),
		Options:  slices.Clone(g.problem.Options),
	}
	return snap
}
