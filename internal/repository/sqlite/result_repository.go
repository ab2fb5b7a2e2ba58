package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/braingym/internal/logger"
	"github.com/vytor/braingym/internal/models"
	"github.com/vytor/braingym/internal/repository"
)

type resultRepository struct {
	db *sql.DB
}

// NewResultRepository creates a new ResultRepository implementation
func NewResultRepository(db *sql.DB) repository.ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Insert(ctx context.Context, result models.SessionResult) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("result_repo")
	log.Debug("inserting result: game=%s score=%d", result.GameID, result.Score)

	query, args, err := sqlBuilder.Insert("session_results").
		Columns("game_id", "score").
		Values(string(result.GameID), result.Score).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to insert result: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *resultRepository) List(ctx context.Context, filter models.ResultFilter) ([]models.ResultRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("result_repo")
	log.Debug("listing results: game=%s limit=%d", filter.GameID, filter.Limit)

	query := sqlBuilder.Select("id", "game_id", "score", "finished_at").
		From("session_results")
	if filter.GameID != "" {
		query = query.Where(squirrel.Eq{"game_id": string(filter.GameID)})
	}
	query = query.OrderBy("finished_at DESC", "id DESC").Limit(clampLimit(filter.Limit))

	sql, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sql, args...)
	if err != nil {
		log.Error("failed to list results: %v", err)
		return nil, err
	}
	defer rows.Close()

	records := []models.ResultRecord{}
	for rows.Next() {
		var rec models.ResultRecord
		var gameID string
		if err := rows.Scan(&rec.ID, &gameID, &rec.Score, &rec.FinishedAt); err != nil {
			log.Error("failed to scan result row: %v", err)
			return nil, err
		}
		rec.GameID = models.GameID(gameID)
		records = append(records, rec)
	}
	log.Debug("found %d results", len(records))
	return records, rows.Err()
}
