package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type robotAt struct {
	name byte
	pos  Position
}

func newTestBoard(t *testing.T, rows, cols int, robots []robotAt, goalRobot string, goal Position) *Board {
	t.Helper()
	b, err := New(rows, cols)
	require.NoError(t, err)
	for _, r := range robots {
		require.NoError(t, b.PlaceRobot(r.pos, r.name))
	}
	require.NoError(t, b.SetGoal(goalRobot, goal))
	return b
}

func TestNew(t *testing.T) {
	b, err := New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 4, b.Cols())
	assert.Equal(t, NoPosition, b.Goal())

	for r := 1; r <= 3; r++ {
		assert.True(t, b.VerticalWall(r, 0))
		assert.True(t, b.VerticalWall(r, 4))
		for line := 1; line < 4; line++ {
			assert.False(t, b.VerticalWall(r, line))
		}
	}
	for c := 1; c <= 4; c++ {
		assert.True(t, b.HorizontalWall(0, c))
		assert.True(t, b.HorizontalWall(3, c))
		for line := 1; line < 3; line++ {
			assert.False(t, b.HorizontalWall(line, c))
		}
	}

	_, err = New(0, 4)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestWalls(t *testing.T) {
	b, err := New(5, 5)
	require.NoError(t, err)

	require.NoError(t, b.AddVerticalWall(2, 3))
	require.NoError(t, b.AddHorizontalWall(4, 1))
	assert.True(t, b.VerticalWall(2, 3))
	assert.True(t, b.HorizontalWall(4, 1))

	assert.ErrorIs(t, b.AddVerticalWall(2, 3), ErrDuplicateWall)
	assert.ErrorIs(t, b.AddHorizontalWall(4, 1), ErrDuplicateWall)
	assert.ErrorIs(t, b.AddVerticalWall(1, 0), ErrDuplicateWall, "border")
	assert.ErrorIs(t, b.AddVerticalWall(6, 1), ErrInvalidWall)
	assert.ErrorIs(t, b.AddHorizontalWall(1, 6), ErrInvalidWall)
	assert.ErrorIs(t, b.AddHorizontalWall(-1, 1), ErrInvalidWall)
}

func TestPlaceRobotAndGoal(t *testing.T) {
	b, err := New(5, 5)
	require.NoError(t, err)

	require.NoError(t, b.PlaceRobot(Position{Row: 1, Col: 1}, 'A'))
	assert.ErrorIs(t, b.PlaceRobot(Position{Row: 1, Col: 1}, 'B'), ErrOccupied)
	assert.ErrorIs(t, b.PlaceRobot(Position{Row: 2, Col: 2}, 'A'), ErrDuplicateRobot)
	assert.ErrorIs(t, b.PlaceRobot(Position{Row: 2, Col: 2}, 'a'), ErrInvalidRobotName)
	assert.ErrorIs(t, b.PlaceRobot(Position{Row: 6, Col: 2}, 'B'), ErrInvalidPosition)

	assert.ErrorIs(t, b.SetGoal("any", Position{Row: 1, Col: 1}), ErrGoalOccupied)
	assert.ErrorIs(t, b.SetGoal("C", Position{Row: 5, Col: 5}), ErrUnknownRobot)
	assert.ErrorIs(t, b.SetGoal("AB", Position{Row: 5, Col: 5}), ErrInvalidRobotName)
	require.NoError(t, b.SetGoal("A", Position{Row: 5, Col: 5}))
	assert.Equal(t, 0, b.GoalRobot())
	assert.ErrorIs(t, b.SetGoal("any", Position{Row: 4, Col: 4}), ErrGoalAlreadyPlaced)
	assert.ErrorIs(t, b.PlaceRobot(Position{Row: 5, Col: 5}, 'B'), ErrGoalOccupied)

	require.NoError(t, b.PlaceRobot(Position{Row: 3, Col: 3}, 'B'))
	assert.Equal(t, 2, b.NumRobots())
	assert.Equal(t, byte('B'), b.Robot(1))
	assert.Equal(t, byte('B'), b.At(Position{Row: 3, Col: 3}))
	i, err := b.WhichRobot('B')
	require.NoError(t, err)
	assert.Equal(t, 1, i)
}

func TestMoveRobot(t *testing.T) {
	t.Run("border", func(t *testing.T) {
		b := newTestBoard(t, 5, 5, []robotAt{{'A', Position{1, 1}}}, "any", Position{5, 5})
		assert.True(t, b.MoveRobot(0, East))
		assert.Equal(t, Position{1, 5}, b.RobotPosition(0))
		assert.Equal(t, byte('A'), b.At(Position{1, 5}))
		assert.Equal(t, empty, b.At(Position{1, 1}))
		assert.True(t, b.MoveRobot(0, South))
		assert.Equal(t, Position{5, 5}, b.RobotPosition(0))
		assert.True(t, b.IsSolved())
	})

	t.Run("robot", func(t *testing.T) {
		b := newTestBoard(t, 5, 5, []robotAt{{'A', Position{1, 1}}, {'B', Position{1, 3}}}, "A", Position{1, 5})
		assert.True(t, b.MoveRobot(0, East))
		assert.Equal(t, Position{1, 2}, b.RobotPosition(0))
		assert.False(t, b.IsSolved())
		assert.False(t, b.CanMoveRobot(0, East))
		assert.False(t, b.MoveRobot(0, East))
	})

	t.Run("walls", func(t *testing.T) {
		b := newTestBoard(t, 5, 5, []robotAt{{'A', Position{3, 3}}}, "any", Position{1, 1})
		require.NoError(t, b.AddVerticalWall(3, 4))   // east of (3,4)
		require.NoError(t, b.AddVerticalWall(3, 1))   // east of (3,1)
		require.NoError(t, b.AddHorizontalWall(1, 3)) // south of (1,3)
		require.NoError(t, b.AddHorizontalWall(4, 3)) // south of (4,3)

		moves := []struct {
			d    Direction
			want Position
		}{
			{East, Position{3, 4}},
			{West, Position{3, 2}},
			{North, Position{1, 2}},
		}
		for _, m := range moves {
			assert.True(t, b.MoveRobot(0, m.d), m.d)
			assert.Equal(t, m.want, b.RobotPosition(0), m.d)
		}

		b2 := newTestBoard(t, 5, 5, []robotAt{{'A', Position{3, 3}}}, "any", Position{1, 1})
		require.NoError(t, b2.AddHorizontalWall(1, 3))
		require.NoError(t, b2.AddHorizontalWall(4, 3))
		assert.True(t, b2.MoveRobot(0, North))
		assert.Equal(t, Position{2, 3}, b2.RobotPosition(0))
		assert.True(t, b2.MoveRobot(0, South))
		assert.Equal(t, Position{4, 3}, b2.RobotPosition(0))
		assert.False(t, b2.MoveRobot(0, South))
	})
}

// every slide must end in front of a wall or a robot and blocked moves must
// not change the board
func TestMoveRobotProperties(t *testing.T) {
	b := newTestBoard(t, 6, 6, []robotAt{
		{'A', Position{1, 1}},
		{'B', Position{4, 2}},
		{'C', Position{6, 6}},
	}, "any", Position{3, 5})
	require.NoError(t, b.AddVerticalWall(2, 3))
	require.NoError(t, b.AddHorizontalWall(3, 5))
	require.NoError(t, b.AddHorizontalWall(1, 1))

	var walk func(b *Board, depth int)
	walk = func(b *Board, depth int) {
		if depth == 0 {
			return
		}
		for i := 0; i < b.NumRobots(); i++ {
			for d := Direction(0); d < NumDirection; d++ {
				nb := b.Clone()
				can := nb.CanMoveRobot(i, d)
				moved := nb.MoveRobot(i, d)
				assert.Equal(t, can, moved)
				if !moved {
					assert.Equal(t, b.cells, nb.cells)
					assert.Equal(t, b.positions, nb.positions)
					continue
				}
				assert.False(t, nb.CanMoveRobot(i, d), "robot stopped mid-slide")
				assert.Equal(t, nb.Robot(i), nb.At(nb.RobotPosition(i)))
				walk(nb, depth-1)
			}
		}
	}
	walk(b, 3)
}

func TestClone(t *testing.T) {
	b := newTestBoard(t, 4, 4, []robotAt{{'A', Position{1, 1}}}, "any", Position{4, 4})
	c := b.Clone()
	require.True(t, c.MoveRobot(0, South))
	require.NoError(t, c.AddVerticalWall(1, 2))

	assert.Equal(t, Position{1, 1}, b.RobotPosition(0))
	assert.Equal(t, byte('A'), b.At(Position{1, 1}))
	assert.False(t, b.VerticalWall(1, 2))
}

func TestExecuteCommand(t *testing.T) {
	b := newTestBoard(t, 5, 5, []robotAt{{'A', Position{1, 1}}, {'B', Position{5, 1}}}, "any", Position{3, 3})

	nb, err := b.ExecuteCommandToNewBoard(Command{Robot: 'B', Direction: North})
	require.NoError(t, err)
	assert.Equal(t, Position{2, 1}, nb.RobotPosition(1))
	assert.Equal(t, Position{5, 1}, b.RobotPosition(1))

	moved, err := b.ExecuteCommand(Command{Robot: 'A', Direction: East})
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, Position{1, 5}, b.RobotPosition(0))

	_, err = b.ExecuteCommand(Command{Robot: 'Z', Direction: East})
	assert.ErrorIs(t, err, ErrUnknownRobot)
}

func TestBuildPlausibleCommand(t *testing.T) {
	b := newTestBoard(t, 5, 5, []robotAt{{'A', Position{3, 3}}, {'B', Position{1, 3}}}, "any", Position{5, 5})
	require.NoError(t, b.AddVerticalWall(3, 4))

	for i := 0; i < b.NumRobots(); i++ {
		for d := Direction(0); d < NumDirection; d++ {
			c := Command{Robot: b.Robot(i), Index: i, Direction: d}
			nb, err := b.ExecuteCommandToNewBoard(c)
			require.NoError(t, err)
			got, err := BuildPlausibleCommand(b, nb)
			if !b.CanMoveRobot(i, d) {
				assert.ErrorIs(t, err, ErrNoDifference)
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, c, got)
		}
	}

	t.Run("no plausible command", func(t *testing.T) {
		nb := b.Clone()
		nb.cells[nb.cellIdx(nb.positions[0])] = empty
		nb.positions[0] = Position{2, 2}
		before := b.RobotPositions()
		_, err := BuildPlausibleCommand(b, nb)
		assert.ErrorIs(t, err, ErrNoPlausibleCommand)
		assert.Equal(t, before, b.RobotPositions())
	})
}

func TestString(t *testing.T) {
	b := newTestBoard(t, 2, 2, []robotAt{{'A', Position{1, 1}}}, "any", Position{2, 2})
	want := "" +
		"    1   2\n" +
		"  +---+---+\n" +
		"  |       |\n" +
		" 1| A     |\n" +
		"  |       |\n" +
		"  +   +   +\n" +
		"  |       |\n" +
		" 2|     ? |\n" +
		"  |       |\n" +
		"  +---+---+\n"
	assert.Equal(t, want, b.String())

	b = newTestBoard(t, 2, 2, []robotAt{{'A', Position{1, 1}}}, "A", Position{2, 2})
	require.NoError(t, b.AddVerticalWall(1, 1))
	assert.Contains(t, b.String(), " 1| A |   |\n")
	assert.Contains(t, b.String(), " 2|     a |\n")
}

func TestParseDirection(t *testing.T) {
	for d := Direction(0); d < NumDirection; d++ {
		got, err := ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := ParseDirection("West")
	require.NoError(t, err)
	assert.Equal(t, West, got)
	_, err = ParseDirection("up")
	assert.Error(t, err)
}
