// Package session drives the active mini-game: it owns the screen the
// player is on, runs the countdown of timed games, and hands finished
// scores to the scorer.
package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/braingym/internal/clock"
	"github.com/vytor/braingym/internal/errors"
	"github.com/vytor/braingym/internal/games"
	"github.com/vytor/braingym/internal/logger"
	"github.com/vytor/braingym/internal/models"
)

// Scorer keeps the best score per game.
type Scorer interface {
	BestScores(ctx context.Context) (models.BestScores, error)
	RecordResult(ctx context.Context, id models.GameID, score int) (models.BestScores, error)
}

type Options struct {
	Rand      *rand.Rand
	Scheduler clock.Scheduler
	Scorer    Scorer
	Logger    *logger.Logger
}

// Controller serializes every player command and timer callback behind one
// mutex. Each started game gets a new generation number; callbacks scheduled
// for an older generation are dropped when they fire.
type Controller struct {
	mu        sync.Mutex
	ctx       context.Context
	rnd       *rand.Rand
	scheduler clock.Scheduler
	scorer    Scorer
	log       *logger.Logger

	screen     models.Screen
	gen        uint64
	runID      string
	game       games.Game
	tick       clock.Timer
	lastGame   models.GameID
	lastResult *models.SessionResult
	best       models.BestScores

	subs    map[int]chan models.View
	nextSub int
	closed  bool
}

// New creates a controller on the menu screen and loads the best scores.
func New(ctx context.Context, opts Options) (*Controller, error) {
	if opts.Rand == nil || opts.Scheduler == nil || opts.Scorer == nil {
		return nil, fmt.Errorf("session: rand, scheduler and scorer are required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.FromContext(ctx)
	}
	log = log.WithPrefix("session")

	best, err := opts.Scorer.BestScores(ctx)
	if err != nil {
		log.Warn("failed to load best scores, starting from zero: %v", err)
		best = models.DefaultBestScores()
	}

	return &Controller{
		ctx:       logger.NewContext(context.WithoutCancel(ctx), log),
		rnd:       opts.Rand,
		scheduler: opts.Scheduler,
		scorer:    opts.Scorer,
		log:       log,
		screen:    models.ScreenMenu,
		best:      best.Clone(),
		subs:      make(map[int]chan models.View),
	}, nil
}

// Select tears down whatever is running and starts a fresh game.
func (c *Controller) Select(id models.GameID) (models.View, error) {
	if !id.Valid() {
		return models.View{}, errors.NewNotFoundError("game", id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.startLocked(id); err != nil {
		return c.viewLocked(), err
	}
	c.publishLocked()
	return c.viewLocked(), nil
}

func (c *Controller) startLocked(id models.GameID) error {
	c.teardownLocked()
	gen := c.gen

	g, err := games.New(id, games.Deps{
		Rand:      c.rnd,
		Scheduler: c.bound(gen),
		OnOver: func(score int) {
			c.finishLocked(gen, score)
		},
	})
	if err != nil {
		c.log.Error("failed to build game %s: %v", id, err)
		return errors.NewInternalError(err)
	}

	c.game = g
	c.runID = uuid.NewString()
	c.lastGame = id
	c.screen = models.ScreenPlaying
	g.Start()

	if _, ok := g.(games.Timed); ok {
		c.scheduleTickLocked(gen)
	}
	c.log.WithFields(logger.Fields{"game": id, "run_id": c.runID}).Info("game started")
	return nil
}

// bound wraps the scheduler so callbacks run under the controller lock and
// only while gen is still the current generation.
func (c *Controller) bound(gen uint64) clock.Scheduler {
	return clock.SchedulerFunc(func(d time.Duration, fn func()) clock.Timer {
		return c.scheduler.AfterFunc(d, func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if c.gen != gen {
				c.log.Debug("dropping stale callback: gen=%d current=%d", gen, c.gen)
				return
			}
			fn()
			c.publishLocked()
		})
	})
}

func (c *Controller) scheduleTickLocked(gen uint64) {
	c.tick = c.bound(gen).AfterFunc(games.TickInterval(), func() {
		c.tickLocked(gen)
	})
}

func (c *Controller) tickLocked(gen uint64) {
	c.tick = nil
	t, ok := c.game.(games.Timed)
	if !ok || !t.Active() {
		return
	}
	if t.Tick() == 0 {
		c.finishLocked(gen, t.Score())
		return
	}
	c.scheduleTickLocked(gen)
}

// finishLocked records the result of the game of generation gen and moves
// to the result screen. It runs at most once per game.
func (c *Controller) finishLocked(gen uint64, score int) {
	if gen != c.gen || c.screen != models.ScreenPlaying || c.game == nil {
		return
	}
	id := c.game.ID()
	log := c.log.WithFields(logger.Fields{"game": id, "run_id": c.runID})

	clock.Stop(c.tick)
	c.tick = nil
	c.game.Stop()
	c.game = nil

	best, err := c.scorer.RecordResult(c.ctx, id, score)
	if err != nil {
		log.Error("failed to record result: %v", err)
		best = c.best.Clone()
		best[id] = max(best[id], score)
	}
	c.best = best.Clone()
	c.lastResult = &models.SessionResult{GameID: id, Score: score}
	c.screen = models.ScreenResult
	log.Info("game over: score=%d best=%d", score, c.best[id])
}

// teardownLocked cancels the running game and every pending callback.
func (c *Controller) teardownLocked() {
	clock.Stop(c.tick)
	c.tick = nil
	if c.game != nil {
		c.game.Stop()
		c.game = nil
	}
	c.runID = ""
	c.gen++
}

// Dispatch forwards a player command to the running game. Commands that
// arrive when no game is running are ignored.
func (c *Controller) Dispatch(cmd models.Command) (models.View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != models.ScreenPlaying || c.game == nil {
		c.log.Debug("ignoring %s command on %s screen", cmd.Action, c.screen)
		return c.viewLocked(), nil
	}
	if err := c.game.Handle(cmd); err != nil {
		return c.viewLocked(), err
	}
	c.publishLocked()
	return c.viewLocked(), nil
}

// Exit abandons the current game without recording a result and returns
// to the menu.
func (c *Controller) Exit() models.View {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen == models.ScreenPlaying {
		c.log.WithField("run_id", c.runID).Info("game abandoned")
	}
	c.teardownLocked()
	c.screen = models.ScreenMenu
	c.publishLocked()
	return c.viewLocked()
}

// Retry replays the last game from the result screen. Without a previous
// game it falls back to the menu.
func (c *Controller) Retry() (models.View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != models.ScreenResult {
		return c.viewLocked(), nil
	}
	if c.lastGame == "" {
		c.screen = models.ScreenMenu
		c.publishLocked()
		return c.viewLocked(), nil
	}
	if err := c.startLocked(c.lastGame); err != nil {
		return c.viewLocked(), err
	}
	c.publishLocked()
	return c.viewLocked(), nil
}

// View returns the current snapshot.
func (c *Controller) View() models.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// BestScores returns a copy of the best scores known to the controller.
func (c *Controller) BestScores() models.BestScores {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.best.Clone()
}

func (c *Controller) viewLocked() models.View {
	v := models.View{
		Screen:     c.screen,
		RunID:      c.runID,
		BestScores: c.best.Clone(),
	}
	if c.game != nil {
		snap := c.game.Snapshot()
		v.Game = &snap
	}
	if c.lastResult != nil {
		r := *c.lastResult
		v.LastResult = &r
	}
	return v
}

// Subscribe returns a channel that receives the view after every change.
// Slow readers only see the latest view. The returned func unsubscribes.
func (c *Controller) Subscribe() (<-chan models.View, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan models.View, 1)
	if c.closed {
		close(ch)
		return ch, func() {}
	}
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	ch <- c.viewLocked()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if sub, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(sub)
			}
		})
	}
}

func (c *Controller) publishLocked() {
	if len(c.subs) == 0 {
		return
	}
	v := c.viewLocked()
	for _, ch := range c.subs {
		select {
		case ch <- v:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}

// Close stops the running game and closes every subscription.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.teardownLocked()
	c.closed = true
	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
}
