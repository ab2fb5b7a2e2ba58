package worker

import (
	"context"
	"fmt"

	"github.com/vytor/braingym/internal/models"
	"github.com/vytor/braingym/internal/repository"
)

// RecordResultJob appends one finished game to the result history.
type RecordResultJob struct {
	Repo   repository.ResultRepository
	Result models.SessionResult
}

func (j *RecordResultJob) Name() string { return "record_result" }

func (j *RecordResultJob) Run(ctx context.Context) error {
	if _, err := j.Repo.Insert(ctx, j.Result); err != nil {
		return fmt.Errorf("insert result %s=%d: %w", j.Result.GameID, j.Result.Score, err)
	}
	return nil
}
