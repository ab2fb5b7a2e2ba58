package games_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/braingym/internal/games"
	"github.com/vytor/braingym/internal/generator"
	"github.com/vytor/braingym/internal/models"
)

func TestCongruence_Scoring(t *testing.T) {
	g := games.NewCongruence(generator.NewSource(1))
	g.Start()
	assert.Equal(t, 30, g.TimeRemaining())

	for i := 0; i < 3; i++ {
		g.Submit(g.Round().IsMatch)
	}
	assert.Equal(t, 30, g.Score())

	g.Submit(!g.Round().IsMatch)
	assert.Equal(t, 20, g.Score())
}

func TestCongruence_ScoreFloor(t *testing.T) {
	g := games.NewCongruence(generator.NewSource(2))
	g.Start()

	for i := 0; i < 20; i++ {
		g.Submit(!g.Round().IsMatch)
		assert.Equal(t, 0, g.Score())
	}
}

func TestCongruence_SnapshotHidesAnswer(t *testing.T) {
	g := games.NewCongruence(generator.NewSource(3))
	g.Start()

	snap := g.Snapshot()
	require.NotNil(t, snap.Congruence)
	assert.Equal(t, g.Round().Word.Word, snap.Congruence.Word)
	assert.Equal(t, g.Round().Ink.Ink, snap.Congruence.Ink)
}

func TestCongruence_HandleRequiresMatch(t *testing.T) {
	g := games.NewCongruence(generator.NewSource(4))
	g.Start()

	assert.Error(t, g.Handle(models.Command{Action: models.ActionSubmit}))

	match := g.Round().IsMatch
	require.NoError(t, g.Handle(models.Command{Action: models.ActionSubmit, Match: &match}))
	assert.Equal(t, 10, g.Score())
}

func TestCongruence_IgnoredWhenInactive(t *testing.T) {
	g := games.NewCongruence(generator.NewSource(5))
	g.Submit(true)
	assert.Equal(t, 0, g.Score())

	g.Start()
	g.Stop()
	g.Submit(g.Round().IsMatch)
	assert.Equal(t, 0, g.Score())
}
