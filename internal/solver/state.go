package solver

import (
	"github.com/go-ricrob/recursivesolver/internal/board"
)

// Resulter is the outcome of a search. Not finding a solution within the
// maximum depth is a valid result and not an error.
type Resulter interface {
	Solved() bool
	Moves() []board.Command
	Solutions() [][]board.Command
	Depth() int
	MaxDepth() int
	NumCalcMove() int
	// Err returns the context error if the search was canceled.
	Err() error
}

var _ Resulter = (*result)(nil)

type result struct {
	solutions   [][]board.Command
	depth       int // number of moves of the solutions
	maxDepth    int
	numCalcMove int
	err         error
}

// Solved reports whether a solution was found.
func (r *result) Solved() bool { return len(r.solutions) > 0 }

// Moves returns the first solution found or nil.
func (r *result) Moves() []board.Command {
	if !r.Solved() {
		return nil
	}
	return r.solutions[0]
}

// Solutions returns all solutions found.
func (r *result) Solutions() [][]board.Command { return r.solutions }

// Depth returns the number of moves of the solutions.
func (r *result) Depth() int { return r.depth }

// MaxDepth returns the maximum depth bound of the search.
func (r *result) MaxDepth() int { return r.maxDepth }

// NumCalcMove returns the number of moves applied during the search.
func (r *result) NumCalcMove() int { return r.numCalcMove }

// Err returns the context error of a canceled search or nil.
func (r *result) Err() error { return r.err }
