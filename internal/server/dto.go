package server

import (
	"github.com/go-ricrob/recursivesolver/internal/board"
	"github.com/google/uuid"
)

// SolveRequest is the body of solve and visualize requests.
type SolveRequest struct {
	Puzzle       string `json:"puzzle" binding:"required"`
	MaxMoves     int    `json:"max_moves" binding:"gte=0"`
	AllSolutions bool   `json:"all_solutions"`
}

// Move is one command of a solution.
type Move struct {
	Robot     string `json:"robot"`
	Direction string `json:"direction"`
}

// SolveResponse is the answer to a solve request.
type SolveResponse struct {
	ID          uuid.UUID `json:"id"`
	Solved      bool      `json:"solved"`
	MaxMoves    int       `json:"max_moves"`
	Moves       []Move    `json:"moves,omitempty"`
	Solutions   [][]Move  `json:"solutions,omitempty"`
	NumCalcMove int       `json:"num_calc_move"`
}

// VisualizeResponse is the answer to a visualize request. Unreachable cells
// are -1.
type VisualizeResponse struct {
	ID       uuid.UUID `json:"id"`
	MaxMoves int       `json:"max_moves"`
	Grid     [][]int   `json:"grid"`
}

func toMoves(cmds []board.Command) []Move {
	moves := make([]Move, len(cmds))
	for i, c := range cmds {
		moves[i] = Move{Robot: string(c.Robot), Direction: c.Direction.String()}
	}
	return moves
}
