package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/braingym/internal/models"
	"github.com/vytor/braingym/internal/repository"
	"github.com/vytor/braingym/internal/repository/sqlite"
	"github.com/vytor/braingym/internal/testutil"
)

type ResultRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ResultRepository
}

func (s *ResultRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewResultRepository(s.db)
}

func (s *ResultRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ResultRepositorySuite) seed(results ...models.SessionResult) {
	for _, r := range results {
		id, err := s.repo.Insert(context.Background(), r)
		s.Require().NoError(err)
		s.Require().Greater(id, int64(0))
	}
}

func (s *ResultRepositorySuite) TestListNewestFirst() {
	s.seed(
		models.SessionResult{GameID: models.GameArithmetic, Score: 10},
		models.SessionResult{GameID: models.GameCongruence, Score: 20},
		models.SessionResult{GameID: models.GameArithmetic, Score: 30},
	)

	records, err := s.repo.List(context.Background(), models.ResultFilter{})
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Assert().Equal(30, records[0].Score)
	s.Assert().Equal(10, records[2].Score)
	s.Assert().False(records[0].FinishedAt.IsZero())
}

func (s *ResultRepositorySuite) TestListFiltersByGame() {
	s.seed(
		models.SessionResult{GameID: models.GameArithmetic, Score: 10},
		models.SessionResult{GameID: models.GameCongruence, Score: 20},
	)

	records, err := s.repo.List(context.Background(), models.ResultFilter{GameID: models.GameCongruence})
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Assert().Equal(models.GameCongruence, records[0].GameID)
	s.Assert().Equal(20, records[0].Score)
}

func (s *ResultRepositorySuite) TestListLimit() {
	for i := 0; i < 5; i++ {
		s.seed(models.SessionResult{GameID: models.GameSequentialTap, Score: i})
	}

	records, err := s.repo.List(context.Background(), models.ResultFilter{Limit: 2})
	s.Require().NoError(err)
	s.Assert().Len(records, 2)
}

func (s *ResultRepositorySuite) TestListEmpty() {
	records, err := s.repo.List(context.Background(), models.ResultFilter{GameID: models.GameReflexHand})
	s.Require().NoError(err)
	s.Assert().NotNil(records)
	s.Assert().Empty(records)
}

func (s *ResultRepositorySuite) TestNegativeScoreRejected() {
	_, err := s.repo.Insert(context.Background(), models.SessionResult{GameID: models.GameArithmetic, Score: -1})
	s.Assert().Error(err)
}

func TestResultRepositorySuite(t *testing.T) {
	suite.Run(t, new(ResultRepositorySuite))
}
