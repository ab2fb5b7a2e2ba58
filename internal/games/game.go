// Package games holds the five mini-game state machines.
//
// A game is not safe for concurrent use. The session controller serializes
// every call, including callbacks fired by the Scheduler it hands in.
package games

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/vytor/braingym/internal/clock"
	"github.com/vytor/braingym/internal/models"
)

const (
	correctReward = 10
	tickInterval  = time.Second
)

// TickInterval is the cadence at which timed games lose a second.
func TickInterval() time.Duration { return tickInterval }

// Game is the contract shared by every mini-game.
type Game interface {
	ID() models.GameID
	// Start resets the game and deals the first round.
	Start()
	// Handle applies one player command. Commands the game cannot accept in
	// its current state are ignored; malformed commands return an error.
	Handle(cmd models.Command) error
	Score() int
	Active() bool
	Snapshot() models.GameSnapshot
	// Stop cancels pending delays and deactivates the game.
	Stop()
}

// Timed is a game that ends when its countdown reaches zero.
type Timed interface {
	Game
	TimeRemaining() int
	// Tick removes one second. When the countdown reaches zero the game
	// deactivates. It returns the seconds left.
	Tick() int
}

// Deps are the collaborators a game is built with.
type Deps struct {
	Rand      *rand.Rand
	Scheduler clock.Scheduler
	// OnOver is called by games that end themselves, with the final score.
	OnOver func(score int)
}

// New builds the game identified by id.
func New(id models.GameID, deps Deps) (Game, error) {
	if deps.Rand == nil {
		return nil, fmt.Errorf("games: random source is required")
	}
	switch id {
	case models.GameArithmetic:
		return NewArithmetic(deps.Rand), nil
	case models.GameCongruence:
		return NewCongruence(deps.Rand), nil
	case models.GameSequenceMemory:
		if deps.Scheduler == nil {
			return nil, fmt.Errorf("games: %s requires a scheduler", id)
		}
		return NewSequenceMemory(deps.Rand, deps.Scheduler, deps.OnOver), nil
	case models.GameReflexHand:
		return NewReflexHand(deps.Rand), nil
	case models.GameSequentialTap:
		return NewSequentialTap(deps.Rand), nil
	default:
		return nil, fmt.Errorf("games: unknown game %q", id)
	}
}

// score is a non-negative running score.
type score int

func (s *score) add(n int) { *s += score(n) }

func (s *score) penalize(n int) { *s = max(0, *s-score(n)) }

// countdown is the per-second timer shared by the timed games.
type countdown struct {
	seconds   int
	remaining int
	active    bool
}

func (c *countdown) reset() {
	c.remaining = c.seconds
	c.active = true
}

func (c *countdown) Tick() int {
	if !c.active {
		return c.remaining
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.active = false
	}
	return c.remaining
}

func (c *countdown) TimeRemaining() int { return c.remaining }

func (c *countdown) Active() bool { return c.active }

func (c *countdown) Stop() { c.active = false }

func (c *countdown) snapshot(id models.GameID, s score) models.GameSnapshot {
	remaining := c.remaining
	return models.GameSnapshot{
		GameID:        id,
		Score:         int(s),
		Active:        c.active,
		TimeRemaining: &remaining,
	}
}
