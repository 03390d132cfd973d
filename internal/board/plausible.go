package board

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDifference is returned by BuildPlausibleCommand for boards with
	// identical robot positions.
	ErrNoDifference = errors.New("boards do not differ")
	// ErrNoPlausibleCommand is returned by BuildPlausibleCommand if no single
	// move transforms one board into the other.
	ErrNoPlausibleCommand = errors.New("no plausible command")

	errInconsistentState = errors.New("inconsistent state")
)

func moveIdx(from, to *Board) (int, error) {
	if len(from.positions) != len(to.positions) {
		return 0, fmt.Errorf("%w: %d robots vs %d robots", errInconsistentState, len(from.positions), len(to.positions))
	}
	for i := range from.positions {
		if from.positions[i] != to.positions[i] {
			return i, nil
		}
	}
	return 0, ErrNoDifference
}

// BuildPlausibleCommand returns the command which transforms board from into
// board to. Both boards are expected to differ in the position of exactly one
// robot. Neither board is modified.
func BuildPlausibleCommand(from, to *Board) (Command, error) {
	idx, err := moveIdx(from, to)
	if err != nil {
		return Command{}, err
	}
	target := to.positions[idx]
	for d := Direction(0); d < NumDirection; d++ {
		if from.destination(idx, d) == target {
			return Command{Robot: from.robots[idx], Index: idx, Direction: d}, nil
		}
	}
	return Command{}, fmt.Errorf("%w: robot %c from %s to %s", ErrNoPlausibleCommand, from.robots[idx], from.positions[idx], target)
}
