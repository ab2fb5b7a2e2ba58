// Package generator produces the rounds played by each mini-game.
//
// Every function is pure apart from the random source it is handed, so a
// seeded *rand.Rand gives reproducible rounds.
package generator

import (
	"math/rand/v2"
	"slices"

	"github.com/vytor/braingym/internal/models"
)

const (
	// OptionCount is the number of candidate answers in an arithmetic round.
	OptionCount = 4
	// GridCells is the number of cells on the sequence-memory board (3x3).
	GridCells = 9
	// MaxSequenceLength caps how many cells a memory round lights up.
	MaxSequenceLength = 8
)

// NewSource returns a PCG-backed random source. A zero seed picks a random one.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

var operators = []models.Operator{models.OpAdd, models.OpSubtract, models.OpMultiply}

// ArithmeticProblem returns a problem with exactly OptionCount distinct,
// non-negative candidates, one of which is the answer.
func ArithmeticProblem(r *rand.Rand) models.ArithmeticProblem {
	op := operators[r.IntN(len(operators))]

	var a, b int
	if op == models.OpMultiply {
		a = r.IntN(9) + 2
		b = r.IntN(9) + 2
	} else {
		a = r.IntN(50) + 1
		b = r.IntN(50) + 1
		if op == models.OpSubtract && a < b {
			a, b = b, a
		}
	}
	answer := op.Apply(a, b)

	options := make([]int, 0, OptionCount)
	options = append(options, answer)
	for len(options) < OptionCount {
		val := answer + r.IntN(10) - 5
		if val < 0 || slices.Contains(options, val) {
			continue
		}
		options = append(options, val)
	}
	r.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return models.ArithmeticProblem{A: a, B: b, Op: op, Answer: answer, Options: options}
}

// CongruenceRound picks a color word and an ink. Half of the rounds match;
// on a mismatch the ink is resampled until it differs from the word's color.
func CongruenceRound(r *rand.Rand) models.CongruenceRound {
	palette := models.Palette()
	match := r.IntN(2) == 0
	word := r.IntN(len(palette))
	ink := word
	if !match {
		for ink == word {
			ink = r.IntN(len(palette))
		}
	}
	return models.CongruenceRound{Word: palette[word], Ink: palette[ink], IsMatch: match}
}

// SequenceLength is the number of cells shown at the given level.
func SequenceLength(level int) int {
	return min(3+level/2, MaxSequenceLength)
}

// MemorySequence returns SequenceLength(level) distinct cell indices in [0, GridCells).
func MemorySequence(r *rand.Rand, level int) []int {
	n := SequenceLength(level)
	seq := make([]int, 0, n)
	for len(seq) < n {
		idx := r.IntN(GridCells)
		if !slices.Contains(seq, idx) {
			seq = append(seq, idx)
		}
	}
	return seq
}

// ReflexRound picks the opposing hand and the instruction uniformly.
func ReflexRound(r *rand.Rand) models.ReflexRound {
	return models.ReflexRound{
		Opponent:    models.Hand(r.IntN(3)),
		Instruction: models.Instruction(r.IntN(3)),
	}
}

// TapGrid returns the integers 1..n in uniformly random order.
func TapGrid(r *rand.Rand, n int) []int {
	grid := make([]int, n)
	for i := range grid {
		grid[i] = i + 1
	}
	r.Shuffle(len(grid), func(i, j int) {
		grid[i], grid[j] = grid[j], grid[i]
	})
	return grid
}
