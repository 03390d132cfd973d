package board

import (
	"errors"
	"fmt"
	"strings"
)

// Position is a 1-indexed grid coordinate.
type Position struct {
	Row, Col int
}

// NoPosition denotes an uninitialized position.
var NoPosition = Position{Row: -1, Col: -1}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Direction is one of the four slide directions.
type Direction uint8

// Directions in enumeration order. The order decides which of several equally
// short solutions a search returns.
const (
	North Direction = iota
	East
	South
	West
)

// NumDirection is the number of directions.
const NumDirection = 4

var directionNames = [NumDirection]string{"north", "east", "south", "west"}

var errInvalidDirection = errors.New("invalid direction")

func (d Direction) String() string {
	if d >= NumDirection {
		return fmt.Sprintf("Direction(%d)", d)
	}
	return directionNames[d]
}

// ParseDirection converts a direction name (case insensitive) to a Direction.
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errInvalidDirection, s)
}

// delta returns the row and column step of d.
func (d Direction) delta() (int, int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		panic("should never happen")
	}
}

// Command is one atomic move: a robot slides in a direction.
type Command struct {
	Robot     byte // robot name
	Index     int  // robot index
	Direction Direction
}

func (c Command) String() string {
	return fmt.Sprintf("Robot %c moves %s", c.Robot, c.Direction)
}
