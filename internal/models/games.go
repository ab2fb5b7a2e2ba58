package models

// GameID identifies a mini-game and its best-score slot.
type GameID string

const (
	GameArithmetic     GameID = "math"
	GameCongruence     GameID = "color"
	GameSequenceMemory GameID = "memory"
	GameReflexHand     GameID = "rps"
	GameSequentialTap  GameID = "number"
)

// AllGames returns every game in menu order.
func AllGames() []GameID {
	return []GameID{
		GameArithmetic,
		GameCongruence,
		GameSequenceMemory,
		GameReflexHand,
		GameSequentialTap,
	}
}

// Valid reports whether id names a known game.
func (id GameID) Valid() bool {
	for _, g := range AllGames() {
		if g == id {
			return true
		}
	}
	return false
}

// Timed reports whether the game ends on a countdown rather than on a mistake.
func (id GameID) Timed() bool {
	return id.Valid() && id != GameSequenceMemory
}

type MenuEntry struct {
	ID          GameID `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Accent      string `json:"accent"`
	BestScore   int    `json:"best_score"`
}

var menuEntries = map[GameID]MenuEntry{
	GameArithmetic:     {ID: GameArithmetic, Title: "計算アタック", Description: "計算力を鍛える", Accent: "blue"},
	GameCongruence:     {ID: GameCongruence, Title: "色彩ジャッジ", Description: "判断力を鍛える", Accent: "purple"},
	GameSequenceMemory: {ID: GameSequenceMemory, Title: "瞬間メモリー", Description: "記憶力を鍛える", Accent: "orange"},
	GameReflexHand:     {ID: GameReflexHand, Title: "後出しジャンケン", Description: "瞬発力を鍛える", Accent: "pink"},
	GameSequentialTap:  {ID: GameSequentialTap, Title: "数字早押し", Description: "視野を広げる", Accent: "teal"},
}

// Menu builds the menu listing with the given best scores filled in.
func Menu(best BestScores) []MenuEntry {
	out := make([]MenuEntry, 0, len(menuEntries))
	for _, id := range AllGames() {
		e := menuEntries[id]
		e.BestScore = best[id]
		out = append(out, e)
	}
	return out
}
