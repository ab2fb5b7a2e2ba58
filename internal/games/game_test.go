package games_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/braingym/internal/games"
	"github.com/vytor/braingym/internal/generator"
	"github.com/vytor/braingym/internal/models"
	"github.com/vytor/braingym/internal/testutil"
)

func TestNew_AllGames(t *testing.T) {
	deps := games.Deps{
		Rand:      generator.NewSource(1),
		Scheduler: testutil.NewFakeScheduler(),
		OnOver:    func(int) {},
	}

	for _, id := range models.AllGames() {
		t.Run(string(id), func(t *testing.T) {
			g, err := games.New(id, deps)
			require.NoError(t, err)
			assert.Equal(t, id, g.ID())
			assert.False(t, g.Active(), "games start inactive")

			g.Start()
			assert.True(t, g.Active())
			assert.Equal(t, id, g.Snapshot().GameID)

			_, timed := g.(games.Timed)
			assert.Equal(t, id.Timed(), timed)
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := games.New("chess", games.Deps{Rand: generator.NewSource(1)})
	assert.Error(t, err)

	_, err = games.New(models.GameArithmetic, games.Deps{})
	assert.Error(t, err)

	_, err = games.New(models.GameSequenceMemory, games.Deps{Rand: generator.NewSource(1)})
	assert.Error(t, err)
}
