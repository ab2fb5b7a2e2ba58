package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/braingym/internal/logger"
	"github.com/vytor/braingym/internal/repository"
)

type kvRepository struct {
	db *sql.DB
}

// NewKeyValueRepository creates a KeyValueRepository backed by the kv_store table
func NewKeyValueRepository(db *sql.DB) repository.KeyValueRepository {
	return &kvRepository{db: db}
}

func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	log := logger.FromContext(ctx).WithPrefix("kv_repo")
	log.Debug("getting key: %s", key)

	query, args, err := sqlBuilder.Select("value").
		From("kv_store").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, false, err
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("key not found: %s", key)
		return nil, false, nil
	}
	if err != nil {
		log.Error("failed to get key %s: %v", key, err)
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (r *kvRepository) Put(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx).WithPrefix("kv_repo")
	log.Debug("putting key: %s (%d bytes)", key, len(value))

	query, args, err := sqlBuilder.Insert("kv_store").
		Columns("key", "value", "updated_at").
		Values(key, string(value), squirrel.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to put key %s: %v", key, err)
		return err
	}
	return nil
}
