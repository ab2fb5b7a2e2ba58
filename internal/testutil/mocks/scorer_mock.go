package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/braingym/internal/models"
)

// MockScorer is a mock implementation of session.Scorer
type MockScorer struct {
	mock.Mock
}

func (m *MockScorer) BestScores(ctx context.Context) (models.BestScores, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.BestScores), args.Error(1)
}

func (m *MockScorer) RecordResult(ctx context.Context, id models.GameID, score int) (models.BestScores, error) {
	args := m.Called(ctx, id, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.BestScores), args.Error(1)
}
