package models

// Screen is the top-level screen the player is on.
type Screen string

const (
	ScreenMenu    Screen = "menu"
	ScreenPlaying Screen = "playing"
	ScreenResult  Screen = "result"
)

// MemoryState is the phase of the sequence-memory game.
type MemoryState string

const (
	MemoryIdle    MemoryState = "idle"
	MemoryShowing MemoryState = "showing"
	MemoryPlaying MemoryState = "playing"
	MemorySuccess MemoryState = "success"
)

type ArithmeticView struct {
	Question string `json:"question"`
	Options  []int  `json:"options"`
}

type CongruenceView struct {
	Word string `json:"word"`
	Ink  string `json:"ink"`
}

type MemoryView struct {
	State    MemoryState `json:"state"`
	Level    int         `json:"level"`
	Sequence []int       `json:"sequence,omitempty"`
	Tapped   []int       `json:"tapped"`
}

type ReflexView struct {
	Opponent    Hand   `json:"opponent"`
	Instruction string `json:"instruction"`
}

type TapView struct {
	Grid   []int `json:"grid"`
	Target int   `json:"target"`
}

// GameSnapshot is the read-only state of a game handed to the renderer.
// Exactly one of the per-game views is set.
type GameSnapshot struct {
	GameID        GameID `json:"game_id"`
	Score         int    `json:"score"`
	Active        bool   `json:"active"`
	TimeRemaining *int   `json:"time_remaining,omitempty"`

	Arithmetic *ArithmeticView `json:"arithmetic,omitempty"`
	Congruence *CongruenceView `json:"congruence,omitempty"`
	Memory     *MemoryView     `json:"memory,omitempty"`
	Reflex     *ReflexView     `json:"reflex,omitempty"`
	Tap        *TapView        `json:"tap,omitempty"`
}

// View is everything the presentation layer needs to draw the current screen.
type View struct {
	Screen     Screen         `json:"screen"`
	RunID      string         `json:"run_id,omitempty"`
	Game       *GameSnapshot  `json:"game,omitempty"`
	LastResult *SessionResult `json:"last_result,omitempty"`
	BestScores BestScores     `json:"best_scores"`
}

const (
	ActionSubmit = "submit"
	ActionTap    = "tap"
)

// Command is a player input forwarded by the renderer. Only the field the
// active game reads needs to be set.
type Command struct {
	Action string `json:"action"`
	Value  *int   `json:"value,omitempty"`
	Match  *bool  `json:"match,omitempty"`
	Hand   *int   `json:"hand,omitempty"`
	Cell   *int   `json:"cell,omitempty"`
	Number *int   `json:"number,omitempty"`
}
