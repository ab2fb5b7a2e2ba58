package models

import "fmt"

// Operator is an arithmetic operator used by the arithmetic game.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
)

// Symbol returns the glyph shown to the player.
func (o Operator) Symbol() string {
	if o == OpMultiply {
		return "×"
	}
	return string(o)
}

// Apply evaluates a op b.
func (o Operator) Apply(a, b int) int {
	switch o {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	default:
		return 0
	}
}

type ArithmeticProblem struct {
	A       int      `json:"a"`
	B       int      `json:"b"`
	Op      Operator `json:"op"`
	Answer  int      `json:"-"`
	Options []int    `json:"options"`
}

// Question renders the problem the way it is displayed, e.g. "7 × 8".
func (p ArithmeticProblem) Question() string {
	return fmt.Sprintf("%d %s %d", p.A, p.Op.Symbol(), p.B)
}

// Color is one entry of the congruence palette.
type Color struct {
	Key  string `json:"key"`
	Word string `json:"word"`
	Ink  string `json:"ink"`
}

var palette = []Color{
	{Key: "red", Word: "あか", Ink: "text-red-600"},
	{Key: "blue", Word: "あお", Ink: "text-blue-600"},
	{Key: "green", Word: "みどり", Ink: "text-green-600"},
	{Key: "yellow", Word: "きいろ", Ink: "text-yellow-500"},
	{Key: "black", Word: "くろ", Ink: "text-gray-900"},
}

// Palette returns a copy of the fixed five-color palette.
func Palette() []Color {
	out := make([]Color, len(palette))
	copy(out, palette)
	return out
}

type CongruenceRound struct {
	Word    Color `json:"word"`
	Ink     Color `json:"ink"`
	IsMatch bool  `json:"-"`
}

// Hand is a rock-paper-scissors gesture.
type Hand int

const (
	Rock Hand = iota
	Scissors
	Paper
)

func (h Hand) Valid() bool { return h >= Rock && h <= Paper }

// Beats reports whether h wins against other.
func (h Hand) Beats(other Hand) bool {
	return (h+1)%3 == other
}

func (h Hand) String() string {
	switch h {
	case Rock:
		return "rock"
	case Scissors:
		return "scissors"
	case Paper:
		return "paper"
	default:
		return "unknown"
	}
}

// Instruction tells the player which outcome to produce.
type Instruction int

const (
	InstructionWin Instruction = iota
	InstructionLose
	InstructionDraw
)

func (i Instruction) String() string {
	switch i {
	case InstructionWin:
		return "win"
	case InstructionLose:
		return "lose"
	case InstructionDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Satisfied reports whether playing player against opponent follows the instruction.
func (i Instruction) Satisfied(player, opponent Hand) bool {
	switch i {
	case InstructionWin:
		return player.Beats(opponent)
	case InstructionLose:
		return opponent.Beats(player)
	case InstructionDraw:
		return player == opponent
	default:
		return false
	}
}

type ReflexRound struct {
	Opponent    Hand        `json:"opponent"`
	Instruction Instruction `json:"instruction"`
}
