package models

import "time"

// BestScores maps every game to its best-ever score.
type BestScores map[GameID]int

// DefaultBestScores returns a map with a zero entry for every game.
func DefaultBestScores() BestScores {
	out := make(BestScores, len(AllGames()))
	for _, id := range AllGames() {
		out[id] = 0
	}
	return out
}

// Clone returns a copy that always carries an entry for every game.
// Negative values are treated as missing.
func (b BestScores) Clone() BestScores {
	out := DefaultBestScores()
	for id, v := range b {
		if id.Valid() && v > 0 {
			out[id] = v
		}
	}
	return out
}

// SessionResult is the final score of one finished game.
type SessionResult struct {
	GameID GameID `json:"game_id"`
	Score  int    `json:"score"`
}

// ResultRecord is a persisted SessionResult.
type ResultRecord struct {
	ID         int64     `json:"id"`
	GameID     GameID    `json:"game_id"`
	Score      int       `json:"score"`
	FinishedAt time.Time `json:"finished_at"`
}

// ResultFilter narrows a result history query.
type ResultFilter struct {
	GameID GameID
	Limit  int
}
