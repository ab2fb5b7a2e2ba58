package games_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/braingym/internal/games"
	"github.com/vytor/braingym/internal/generator"
	"github.com/vytor/braingym/internal/models"
)

var allHands = []models.Hand{models.Rock, models.Scissors, models.Paper}

func correctHand(r models.ReflexRound) models.Hand {
	for _, h := range allHands {
		if r.Instruction.Satisfied(h, r.Opponent) {
			return h
		}
	}
	panic("no correct hand")
}

func wrongHand(r models.ReflexRound) models.Hand {
	for _, h := range allHands {
		if !r.Instruction.Satisfied(h, r.Opponent) {
			return h
		}
	}
	panic("no wrong hand")
}

func TestInstruction_Satisfied(t *testing.T) {
	tests := []struct {
		name        string
		opponent    models.Hand
		instruction models.Instruction
		correct     models.Hand
	}{
		{name: "beat rock", opponent: models.Rock, instruction: models.InstructionWin, correct: models.Paper},
		{name: "beat scissors", opponent: models.Scissors, instruction: models.InstructionWin, correct: models.Rock},
		{name: "beat paper", opponent: models.Paper, instruction: models.InstructionWin, correct: models.Scissors},
		{name: "lose to rock", opponent: models.Rock, instruction: models.InstructionLose, correct: models.Scissors},
		{name: "lose to scissors", opponent: models.Scissors, instruction: models.InstructionLose, correct: models.Paper},
		{name: "lose to paper", opponent: models.Paper, instruction: models.InstructionLose, correct: models.Rock},
		{name: "draw rock", opponent: models.Rock, instruction: models.InstructionDraw, correct: models.Rock},
		{name: "draw paper", opponent: models.Paper, instruction: models.InstructionDraw, correct: models.Paper},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, h := range allHands {
				assert.Equal(t, h == tt.correct, tt.instruction.Satisfied(h, tt.opponent), "player %s", h)
			}
		})
	}
}

func TestReflexHand_Scoring(t *testing.T) {
	g := games.NewReflexHand(generator.NewSource(1))
	g.Start()
	assert.Equal(t, 30, g.TimeRemaining())

	g.Submit(correctHand(g.Round()))
	g.Submit(correctHand(g.Round()))
	assert.Equal(t, 20, g.Score())

	g.Submit(wrongHand(g.Round()))
	assert.Equal(t, 10, g.Score())

	for i := 0; i < 5; i++ {
		g.Submit(wrongHand(g.Round()))
	}
	assert.Equal(t, 0, g.Score())
}

func TestReflexHand_HandleValidatesHand(t *testing.T) {
	g := games.NewReflexHand(generator.NewSource(2))
	g.Start()

	bad := 3
	assert.Error(t, g.Handle(models.Command{Action: models.ActionSubmit, Hand: &bad}))
	assert.Error(t, g.Handle(models.Command{Action: models.ActionSubmit}))

	good := int(correctHand(g.Round()))
	require.NoError(t, g.Handle(models.Command{Action: models.ActionSubmit, Hand: &good}))
	assert.Equal(t, 10, g.Score())

	snap := g.Snapshot()
	require.NotNil(t, snap.Reflex)
	assert.Equal(t, g.Round().Opponent, snap.Reflex.Opponent)
	assert.Equal(t, g.Round().Instruction.String(), snap.Reflex.Instruction)
}
