package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vytor/braingym/internal/logger"
	"github.com/vytor/braingym/internal/models"
	"github.com/vytor/braingym/internal/services"
)

// Sessions is the session controller as seen by the HTTP layer.
type Sessions interface {
	View() models.View
	BestScores() models.BestScores
	Select(id models.GameID) (models.View, error)
	Dispatch(cmd models.Command) (models.View, error)
	Exit() models.View
	Retry() (models.View, error)
	Subscribe() (<-chan models.View, func())
}

// ReadinessChecker reports whether a backing store can serve traffic.
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

type Server struct {
	Sessions Sessions
	Scores   services.ScoringService
	// Store is nil when scores live in memory.
	Store ReadinessChecker
}

const maxBodyBytes = 1 << 16

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}
