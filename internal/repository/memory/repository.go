// Package memory holds map-backed repositories. State is lost when the
// process exits, which suits tests and SCORE_STORE=memory.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/vytor/braingym/internal/models"
	"github.com/vytor/braingym/internal/repository"
)

type kvRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewKeyValueRepository creates an in-memory KeyValueRepository.
func NewKeyValueRepository() repository.KeyValueRepository {
	return &kvRepository{values: make(map[string][]byte)}
}

func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

func (r *kvRepository) Put(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = slices.Clone(value)
	return nil
}

type resultRepository struct {
	mu      sync.RWMutex
	nextID  int64
	records []models.ResultRecord
	now     func() time.Time
}

// NewResultRepository creates an in-memory ResultRepository.
func NewResultRepository() repository.ResultRepository {
	return &resultRepository{now: time.Now}
}

func (r *resultRepository) Insert(ctx context.Context, result models.SessionResult) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.records = append(r.records, models.ResultRecord{
		ID:         r.nextID,
		GameID:     result.GameID,
		Score:      result.Score,
		FinishedAt: r.now().UTC(),
	})
	return r.nextID, nil
}

func (r *resultRepository) List(ctx context.Context, filter models.ResultFilter) ([]models.ResultRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	out := []models.ResultRecord{}
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		rec := r.records[i]
		if filter.GameID != "" && rec.GameID != filter.GameID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
