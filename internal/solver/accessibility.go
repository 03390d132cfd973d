package solver

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/go-ricrob/recursivesolver/internal/board"
)

// Unreachable marks a grid cell no robot reached within the maximum depth.
const Unreachable = -1

const notSeen = math.MaxInt

// Grid holds per board cell the minimal number of moves after which any robot
// occupied the cell. Grid[row-1][col-1] belongs to position (row, col).
type Grid [][]int

// At returns the grid value of position p.
func (g Grid) At(p board.Position) int { return g[p.Row-1][p.Col-1] }

// String renders the grid with '.' for unreachable cells.
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			if v == Unreachable {
				sb.WriteString("   . ")
			} else {
				fmt.Fprintf(&sb, "%4d ", v)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Accessibility explores every move sequence of up to maxDepth moves of all
// robots and records for every cell the least number of moves after which a
// robot stood on it. Start positions count as reached after zero moves.
//
// The traversal is depth first. As it visits every sequence without pruning,
// the recorded values equal the breadth first minimum.
func Accessibility(b *board.Board, maxDepth int) Grid {
	g, _ := AccessibilityContext(context.Background(), b, maxDepth)
	return g
}

// AccessibilityContext is like Accessibility but stops exploring when ctx is
// done. The grid of a canceled exploration is incomplete and returned with the
// context error.
func AccessibilityContext(ctx context.Context, b *board.Board, maxDepth int) (Grid, error) {
	if maxDepth < 0 {
		maxDepth = 0
	}
	g := make(Grid, b.Rows())
	for r := range g {
		g[r] = make([]int, b.Cols())
		for c := range g[r] {
			g[r][c] = notSeen
		}
	}

	explore(ctx, b, g, maxDepth, 0)

	for r := range g {
		for c := range g[r] {
			if g[r][c] == notSeen {
				g[r][c] = Unreachable
			}
		}
	}
	return g, ctx.Err()
}

func explore(ctx context.Context, b *board.Board, g Grid, maxDepth, depth int) {
	for i := 0; i < b.NumRobots(); i++ {
		p := b.RobotPosition(i)
		if g[p.Row-1][p.Col-1] > depth {
			g[p.Row-1][p.Col-1] = depth
		}
	}
	if depth >= maxDepth || ctx.Err() != nil {
		return
	}
	for i := 0; i < b.NumRobots(); i++ {
		for d := board.Direction(0); d < board.NumDirection; d++ {
			next := b.Clone()
			if next.MoveRobot(i, d) {
				explore(ctx, next, g, maxDepth, depth+1)
			}
		}
	}
}
