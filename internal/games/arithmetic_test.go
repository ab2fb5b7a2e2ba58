package games_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/braingym/internal/errors"
	"github.com/vytor/braingym/internal/games"
	"github.com/vytor/braingym/internal/generator"
	"github.com/vytor/braingym/internal/models"
)

func wrongOption(p models.ArithmeticProblem) int {
	for _, o := range p.Options {
		if o != p.Answer {
			return o
		}
	}
	panic("no wrong option")
}

func TestArithmetic_Start(t *testing.T) {
	g := games.NewArithmetic(generator.NewSource(1))
	g.Start()

	assert.True(t, g.Active())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 30, g.TimeRemaining())
	assert.Len(t, g.Problem().Options, 4)

	snap := g.Snapshot()
	require.NotNil(t, snap.Arithmetic)
	require.NotNil(t, snap.TimeRemaining)
	assert.Equal(t, 30, *snap.TimeRemaining)
	assert.Equal(t, g.Problem().Question(), snap.Arithmetic.Question)
	assert.Equal(t, models.GameArithmetic, snap.GameID)
}

func TestArithmetic_CorrectAnswer(t *testing.T) {
	g := games.NewArithmetic(generator.NewSource(2))
	g.Start()

	g.Submit(g.Problem().Answer)
	assert.Equal(t, 10, g.Score())

	g.Submit(g.Problem().Answer)
	assert.Equal(t, 20, g.Score())
}

func TestArithmetic_WrongAnswerKeepsProblem(t *testing.T) {
	g := games.NewArithmetic(generator.NewSource(3))
	g.Start()

	g.Submit(g.Problem().Answer)
	g.Submit(g.Problem().Answer)
	before := g.Problem()

	g.Submit(wrongOption(before))
	assert.Equal(t, 15, g.Score(), "wrong answer costs 5")
	assert.Equal(t, before, g.Problem(), "problem must not be regenerated")
}

func TestArithmetic_ScoreFloor(t *testing.T) {
	g := games.NewArithmetic(generator.NewSource(4))
	g.Start()

	g.Submit(g.Problem().Answer)
	for i := 0; i < 10; i++ {
		g.Submit(wrongOption(g.Problem()))
		assert.GreaterOrEqual(t, g.Score(), 0)
	}
	assert.Equal(t, 0, g.Score())
}

func TestArithmetic_TimerExpiry(t *testing.T) {
	g := games.NewArithmetic(generator.NewSource(5))
	g.Start()

	for i := 29; i >= 1; i-- {
		assert.Equal(t, i, g.Tick())
		assert.True(t, g.Active())
	}
	assert.Equal(t, 0, g.Tick())
	assert.False(t, g.Active())

	g.Submit(g.Problem().Answer)
	assert.Equal(t, 0, g.Score(), "answers after time up are ignored")
	assert.Equal(t, 0, g.Tick(), "ticking an inactive game is a no-op")
}

func TestArithmetic_Handle(t *testing.T) {
	g := games.NewArithmetic(generator.NewSource(6))
	g.Start()

	answer := g.Problem().Answer
	require.NoError(t, g.Handle(models.Command{Action: models.ActionSubmit, Value: &answer}))
	assert.Equal(t, 10, g.Score())

	err := g.Handle(models.Command{Action: models.ActionSubmit})
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)

	err = g.Handle(models.Command{Action: models.ActionTap, Value: &answer})
	appErr, ok = errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeBadRequest, appErr.Code)
}
