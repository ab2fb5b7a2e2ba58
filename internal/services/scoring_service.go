package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"

	"github.com/vytor/braingym/internal/errors"
	"github.com/vytor/braingym/internal/logger"
	"github.com/vytor/braingym/internal/models"
	"github.com/vytor/braingym/internal/repository"
	"github.com/vytor/braingym/internal/worker"
)

// BestScoresKey is the single key the best-score map is stored under.
const BestScoresKey = "brain-gym-senior-scores"

// ScoringService owns the best score of every game.
type ScoringService interface {
	// LoadBestScores reads the stored map. Absent or malformed data
	// yields all-zero scores.
	LoadBestScores(ctx context.Context) models.BestScores
	BestScores(ctx context.Context) (models.BestScores, error)
	RecordResult(ctx context.Context, id models.GameID, score int) (models.BestScores, error)
	RecentResults(ctx context.Context, filter models.ResultFilter) ([]models.ResultRecord, error)
}

// JobSubmitter queues background work without blocking.
type JobSubmitter interface {
	TrySubmit(job worker.Job) bool
}

type ScoringOption func(*scoringService)

// WithHistoryQueue moves result history writes onto a background queue.
func WithHistoryQueue(q JobSubmitter) ScoringOption {
	return func(s *scoringService) {
		s.history = q
	}
}

type scoringService struct {
	mu      sync.Mutex
	kv      repository.KeyValueRepository
	results repository.ResultRepository
	history JobSubmitter
	best    models.BestScores
}

// NewScoringService creates a new ScoringService
func NewScoringService(kv repository.KeyValueRepository, results repository.ResultRepository, opts ...ScoringOption) ScoringService {
	s := &scoringService{kv: kv, results: results}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *scoringService) LoadBestScores(ctx context.Context) models.BestScores {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.best = s.read(ctx)
	return s.best.Clone()
}

func (s *scoringService) BestScores(ctx context.Context) (models.BestScores, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.best.Clone(), nil
}

func (s *scoringService) RecordResult(ctx context.Context, id models.GameID, score int) (models.BestScores, error) {
	log := logger.FromContext(ctx).WithPrefix("scoring")

	if !id.Valid() {
		return nil, errors.NewValidationError("game", fmt.Sprintf("unknown game %q", id))
	}
	if score < 0 {
		return nil, errors.NewValidationError("score", "cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	s.appendHistory(ctx, models.SessionResult{GameID: id, Score: score})

	if score <= s.best[id] {
		log.Debug("score %d does not beat best %d for %s", score, s.best[id], id)
	} else {
		log.Info("new best score for %s: %d (was %d)", id, score, s.best[id])
	}

	updated := s.best.Clone()
	updated[id] = max(updated[id], score)
	s.best = updated

	// The whole map is rewritten on every result, even an unchanged one.
	raw, err := json.Marshal(updated)
	if err != nil {
		return updated.Clone(), errors.NewInternalError(err)
	}
	if err := s.kv.Put(ctx, BestScoresKey, raw); err != nil {
		log.Error("failed to persist best scores: %v", err)
		return updated.Clone(), errors.NewInternalError(fmt.Errorf("persist best scores: %w", err))
	}
	return updated.Clone(), nil
}

func (s *scoringService) RecentResults(ctx context.Context, filter models.ResultFilter) ([]models.ResultRecord, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing results: game=%s limit=%d", filter.GameID, filter.Limit)

	if filter.GameID != "" && !filter.GameID.Valid() {
		return nil, errors.NewNotFoundError("game", filter.GameID)
	}
	if filter.Limit < 0 {
		return nil, errors.NewValidationError("limit", "cannot be negative")
	}

	records, err := s.results.List(ctx, filter)
	if err != nil {
		log.Error("failed to list results: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return records, nil
}

func (s *scoringService) appendHistory(ctx context.Context, result models.SessionResult) {
	job := &worker.RecordResultJob{Repo: s.results, Result: result}
	if s.history != nil && s.history.TrySubmit(job) {
		return
	}
	if err := job.Run(ctx); err != nil {
		logger.FromContext(ctx).WithPrefix("scoring").Warn("failed to append result history: %v", err)
	}
}

func (s *scoringService) ensureLoaded(ctx context.Context) {
	if s.best == nil {
		s.best = s.read(ctx)
	}
}

func (s *scoringService) read(ctx context.Context) models.BestScores {
	log := logger.FromContext(ctx).WithPrefix("scoring")

	raw, found, err := s.kv.Get(ctx, BestScoresKey)
	if err != nil {
		log.Warn("failed to read best scores, starting from zero: %v", err)
		return models.DefaultBestScores()
	}
	if !found {
		log.Debug("no stored best scores")
		return models.DefaultBestScores()
	}

	best, err := decodeBestScores(raw)
	if err != nil {
		log.Warn("stored best scores are malformed, starting from zero: %v", err)
		return models.DefaultBestScores()
	}
	return best
}

// decodeBestScores parses the stored map. Unknown keys are dropped and
// missing games default to zero.
func decodeBestScores(raw []byte) (models.BestScores, error) {
	var stored map[string]float64
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}
	best := models.BestScores{}
	for k, v := range stored {
		if math.IsNaN(v) || v <= 0 {
			continue
		}
		best[models.GameID(k)] = int(math.Min(v, math.MaxInt32))
	}
	return best.Clone(), nil
}
