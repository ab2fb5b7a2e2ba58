package games_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/braingym/internal/games"
	"github.com/vytor/braingym/internal/generator"
	"github.com/vytor/braingym/internal/models"
)

func TestSequentialTap_FullClear(t *testing.T) {
	g := games.NewSequentialTap(generator.NewSource(1))
	g.Start()
	assert.Equal(t, 40, g.TimeRemaining())
	assert.Equal(t, 1, g.Target())

	for n := 1; n <= games.GridMax; n++ {
		g.Tap(n)
	}

	assert.Equal(t, 36, g.Score(), "16 hits plus the clear bonus")
	assert.Equal(t, 1, g.Target())

	grid := g.Grid()
	require.Len(t, grid, games.GridMax)
	sorted := slices.Clone(grid)
	slices.Sort(sorted)
	for i, v := range sorted {
		assert.Equal(t, i+1, v)
	}
}

func TestSequentialTap_WrongNumberIsNoop(t *testing.T) {
	g := games.NewSequentialTap(generator.NewSource(2))
	g.Start()

	g.Tap(5)
	g.Tap(0)
	g.Tap(17)
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 1, g.Target())

	g.Tap(1)
	g.Tap(1)
	assert.Equal(t, 1, g.Score())
	assert.Equal(t, 2, g.Target())
}

func TestSequentialTap_IgnoredWhenInactive(t *testing.T) {
	g := games.NewSequentialTap(generator.NewSource(3))
	g.Start()
	for i := 0; i < 40; i++ {
		g.Tick()
	}
	require.False(t, g.Active())

	g.Tap(1)
	assert.Equal(t, 0, g.Score())
}

func TestSequentialTap_Handle(t *testing.T) {
	g := games.NewSequentialTap(generator.NewSource(4))
	g.Start()

	n := 1
	require.NoError(t, g.Handle(models.Command{Action: models.ActionTap, Number: &n}))
	assert.Equal(t, 1, g.Score())
	assert.Error(t, g.Handle(models.Command{Action: models.ActionTap}))
	assert.Error(t, g.Handle(models.Command{Action: models.ActionSubmit, Number: &n}))

	snap := g.Snapshot()
	require.NotNil(t, snap.Tap)
	assert.Equal(t, 2, snap.Tap.Target)
	assert.Len(t, snap.Tap.Grid, games.GridMax)
}
