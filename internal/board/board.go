// Package board models a ricochet robots puzzle board: its walls, the robots
// sliding on it and the goal cell.
//
// Walls are addressed by grid lines. Horizontal grid line i (0 <= i <= rows)
// lies between row i and row i+1, vertical grid line j (0 <= j <= cols) between
// column j and column j+1. The puzzle notation "row 2.5" therefore is line 2.
// Lines 0 and rows (cols) are the board border and always carry a wall.
package board

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// AnyRobot is the goal robot index meaning that every robot may reach the goal.
const AnyRobot = -1

// AnyRobotName is the goal robot name of the puzzle notation for AnyRobot.
const AnyRobotName = "any"

const empty byte = 0

var (
	ErrInvalidSize       = errors.New("invalid board size")
	ErrInvalidPosition   = errors.New("position out of board")
	ErrInvalidWall       = errors.New("wall out of board")
	ErrDuplicateWall     = errors.New("wall does already exist")
	ErrInvalidRobotName  = errors.New("robot name must be a capital letter")
	ErrDuplicateRobot    = errors.New("robot does already exist")
	ErrOccupied          = errors.New("position is occupied by a robot")
	ErrGoalOccupied      = errors.New("robot may not start at the goal")
	ErrUnknownRobot      = errors.New("robot does not exist")
	ErrGoalAlreadyPlaced = errors.New("goal is already set")
	ErrNoGoal            = errors.New("goal is not set")
)

// Board holds the puzzle geometry, the robots and the goal.
// The zero value is not usable, use New.
type Board struct {
	rows, cols int
	cells      []byte // rows*cols, robot name or empty
	vWalls     []bool // rows*(cols+1)
	hWalls     []bool // (rows+1)*cols

	robots    []byte // robot names, index is the robot identity
	positions []Position

	goal      Position
	goalRobot int
}

// New returns an empty board of the given size surrounded by walls.
func New(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	b := &Board{
		rows:      rows,
		cols:      cols,
		cells:     make([]byte, rows*cols),
		vWalls:    make([]bool, rows*(cols+1)),
		hWalls:    make([]bool, (rows+1)*cols),
		goal:      NoPosition,
		goalRobot: AnyRobot,
	}
	for r := 1; r <= rows; r++ {
		b.vWalls[b.vIdx(r, 0)] = true
		b.vWalls[b.vIdx(r, cols)] = true
	}
	for c := 1; c <= cols; c++ {
		b.hWalls[b.hIdx(0, c)] = true
		b.hWalls[b.hIdx(rows, c)] = true
	}
	return b, nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	c.cells = slices.Clone(b.cells)
	c.vWalls = slices.Clone(b.vWalls)
	c.hWalls = slices.Clone(b.hWalls)
	c.robots = slices.Clone(b.robots)
	c.positions = slices.Clone(b.positions)
	return &c
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

func (b *Board) cellIdx(p Position) int { return (p.Row-1)*b.cols + p.Col - 1 }
func (b *Board) vIdx(row, line int) int { return (row-1)*(b.cols+1) + line }
func (b *Board) hIdx(line, col int) int { return line*b.cols + col - 1 }
func (b *Board) validHLine(line, col int) bool {
	return line >= 0 && line <= b.rows && col >= 1 && col <= b.cols
}
func (b *Board) validVLine(row, line int) bool {
	return row >= 1 && row <= b.rows && line >= 0 && line <= b.cols
}

// Contains reports whether p lies on the board.
func (b *Board) Contains(p Position) bool {
	return p.Row >= 1 && p.Row <= b.rows && p.Col >= 1 && p.Col <= b.cols
}

// HorizontalWall reports whether there is a wall on grid line line (between
// row line and line+1) at column col.
func (b *Board) HorizontalWall(line, col int) bool {
	if !b.validHLine(line, col) {
		panic(fmt.Sprintf("horizontal wall %d.5 %d out of board", line, col))
	}
	return b.hWalls[b.hIdx(line, col)]
}

// VerticalWall reports whether there is a wall on grid line line (between
// column line and line+1) at row row.
func (b *Board) VerticalWall(row, line int) bool {
	if !b.validVLine(row, line) {
		panic(fmt.Sprintf("vertical wall %d %d.5 out of board", row, line))
	}
	return b.vWalls[b.vIdx(row, line)]
}

// AddHorizontalWall adds a wall between row line and line+1 at column col.
func (b *Board) AddHorizontalWall(line, col int) error {
	if !b.validHLine(line, col) {
		return fmt.Errorf("%w: horizontal %d.5 %d", ErrInvalidWall, line, col)
	}
	idx := b.hIdx(line, col)
	if b.hWalls[idx] {
		return fmt.Errorf("%w: horizontal %d.5 %d", ErrDuplicateWall, line, col)
	}
	b.hWalls[idx] = true
	return nil
}

// AddVerticalWall adds a wall between column line and line+1 at row row.
func (b *Board) AddVerticalWall(row, line int) error {
	if !b.validVLine(row, line) {
		return fmt.Errorf("%w: vertical %d %d.5", ErrInvalidWall, row, line)
	}
	idx := b.vIdx(row, line)
	if b.vWalls[idx] {
		return fmt.Errorf("%w: vertical %d %d.5", ErrDuplicateWall, row, line)
	}
	b.vWalls[idx] = true
	return nil
}

// At returns the name of the robot at p or 0 if the cell is empty.
func (b *Board) At(p Position) byte {
	if !b.Contains(p) {
		panic(fmt.Sprintf("position %s out of board", p))
	}
	return b.cells[b.cellIdx(p)]
}

// NumRobots returns the number of robots.
func (b *Board) NumRobots() int { return len(b.robots) }

// Robot returns the name of robot i.
func (b *Board) Robot(i int) byte { return b.robots[i] }

// RobotPosition returns the current position of robot i.
func (b *Board) RobotPosition(i int) Position { return b.positions[i] }

// RobotPositions returns a copy of all robot positions in index order.
func (b *Board) RobotPositions() []Position { return slices.Clone(b.positions) }

// WhichRobot returns the index of the robot named name.
func (b *Board) WhichRobot(name byte) (int, error) {
	if i := slices.Index(b.robots, name); i >= 0 {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %c", ErrUnknownRobot, name)
}

// PlaceRobot places a new robot named name at p. The robot gets the next free
// index which stays its identity for the lifetime of the board.
func (b *Board) PlaceRobot(p Position, name byte) error {
	if !b.Contains(p) {
		return fmt.Errorf("%w: robot %c at %s", ErrInvalidPosition, name, p)
	}
	if name < 'A' || name > 'Z' {
		return fmt.Errorf("%w: %q", ErrInvalidRobotName, name)
	}
	if slices.Contains(b.robots, name) {
		return fmt.Errorf("%w: %c", ErrDuplicateRobot, name)
	}
	if b.At(p) != empty {
		return fmt.Errorf("%w: robot %c at %s", ErrOccupied, name, p)
	}
	if p == b.goal {
		return fmt.Errorf("%w: robot %c at %s", ErrGoalOccupied, name, p)
	}
	b.robots = append(b.robots, name)
	b.positions = append(b.positions, p)
	b.cells[b.cellIdx(p)] = name
	return nil
}

// Goal returns the goal position or NoPosition if no goal is set.
func (b *Board) Goal() Position { return b.goal }

// GoalRobot returns the index of the robot which must reach the goal or
// AnyRobot.
func (b *Board) GoalRobot() int { return b.goalRobot }

// SetGoal sets the goal position and the robot (name or AnyRobotName) which
// has to reach it.
func (b *Board) SetGoal(robot string, p Position) error {
	if !b.Contains(p) {
		return fmt.Errorf("%w: goal at %s", ErrInvalidPosition, p)
	}
	if b.goal != NoPosition {
		return fmt.Errorf("%w: at %s", ErrGoalAlreadyPlaced, b.goal)
	}
	if b.At(p) != empty {
		return fmt.Errorf("%w: goal at %s", ErrGoalOccupied, p)
	}
	goalRobot := AnyRobot
	if robot != AnyRobotName {
		if len(robot) != 1 {
			return fmt.Errorf("%w: %q", ErrInvalidRobotName, robot)
		}
		i, err := b.WhichRobot(robot[0])
		if err != nil {
			return err
		}
		goalRobot = i
	}
	b.goal, b.goalRobot = p, goalRobot
	return nil
}

// IsSolved reports whether the goal robot (or any robot) occupies the goal.
func (b *Board) IsSolved() bool {
	if b.goal == NoPosition {
		return false
	}
	if b.goalRobot != AnyRobot {
		return b.positions[b.goalRobot] == b.goal
	}
	return slices.Contains(b.positions, b.goal)
}

// wall reports whether a wall lies on side d of p.
func (b *Board) wall(p Position, d Direction) bool {
	switch d {
	case North:
		return b.hWalls[b.hIdx(p.Row-1, p.Col)]
	case South:
		return b.hWalls[b.hIdx(p.Row, p.Col)]
	case West:
		return b.vWalls[b.vIdx(p.Row, p.Col-1)]
	case East:
		return b.vWalls[b.vIdx(p.Row, p.Col)]
	default:
		panic("should never happen")
	}
}

// blocked reports whether a robot at p cannot step in direction d.
// The border walls guarantee that the neighbour cell is on the board.
func (b *Board) blocked(p Position, d Direction) bool {
	if b.wall(p, d) {
		return true
	}
	dr, dc := d.delta()
	return b.cells[b.cellIdx(Position{Row: p.Row + dr, Col: p.Col + dc})] != empty
}

// CanMoveRobot reports whether robot i can take at least one step in
// direction d.
func (b *Board) CanMoveRobot(i int, d Direction) bool {
	return !b.blocked(b.positions[i], d)
}

// destination returns the cell where robot i comes to rest sliding in d.
func (b *Board) destination(i int, d Direction) Position {
	p := b.positions[i]
	dr, dc := d.delta()
	for !b.blocked(p, d) {
		p.Row += dr
		p.Col += dc
	}
	return p
}

// MoveRobot slides robot i in direction d until it hits a wall or another
// robot. It returns false and leaves the board unchanged if the robot cannot
// move at all.
func (b *Board) MoveRobot(i int, d Direction) bool {
	from := b.positions[i]
	to := b.destination(i, d)
	if to == from {
		return false
	}
	b.cells[b.cellIdx(from)] = empty
	b.cells[b.cellIdx(to)] = b.robots[i]
	b.positions[i] = to
	return true
}

// ExecuteCommand applies c to the board. The robot is looked up by name.
func (b *Board) ExecuteCommand(c Command) (bool, error) {
	i, err := b.WhichRobot(c.Robot)
	if err != nil {
		return false, err
	}
	return b.MoveRobot(i, c.Direction), nil
}

// ExecuteCommandToNewBoard applies c to a copy of the board and returns the
// copy. The receiver is not modified.
func (b *Board) ExecuteCommandToNewBoard(c Command) (*Board, error) {
	nb := b.Clone()
	if _, err := nb.ExecuteCommand(c); err != nil {
		return nil, err
	}
	return nb, nil
}
