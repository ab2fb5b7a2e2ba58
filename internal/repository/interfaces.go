package repository

import (
	"context"

	"github.com/vytor/braingym/internal/models"
)

// KeyValueRepository stores opaque values under string keys.
// Get reports found=false for an absent key.
type KeyValueRepository interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
}

// ResultRepository keeps the history of finished games
type ResultRepository interface {
	Insert(ctx context.Context, result models.SessionResult) (int64, error)
	List(ctx context.Context, filter models.ResultFilter) ([]models.ResultRecord, error)
}
