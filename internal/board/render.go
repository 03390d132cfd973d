package board

import (
	"fmt"
	"strings"
)

// String renders the board as ASCII art. Every row takes three text lines
// followed by the horizontal wall line below it. The goal is shown as '?' if
// any robot may reach it, else as the lower case name of the goal robot.
func (b *Board) String() string {
	var sb strings.Builder

	sb.WriteString(" ")
	for c := 1; c <= b.cols; c++ {
		fmt.Fprintf(&sb, "%4d", c)
	}
	sb.WriteString("\n")

	for r := 0; r <= b.rows; r++ {
		if r > 0 {
			var outer, middle strings.Builder
			outer.WriteString("  ")
			for c := 0; c <= b.cols; c++ {
				if c > 0 {
					outer.WriteString("   ")
					middle.WriteByte(' ')
					middle.WriteByte(b.symbol(Position{Row: r, Col: c}))
					middle.WriteByte(' ')
				}
				if b.VerticalWall(r, c) {
					outer.WriteByte('|')
					middle.WriteByte('|')
				} else {
					outer.WriteByte(' ')
					middle.WriteByte(' ')
				}
			}
			fmt.Fprintf(&sb, "%s\n%2d%s\n%s\n", outer.String(), r, middle.String(), outer.String())
		}

		sb.WriteString("  +")
		for c := 1; c <= b.cols; c++ {
			if b.HorizontalWall(r, c) {
				sb.WriteString("---")
			} else {
				sb.WriteString("   ")
			}
			sb.WriteByte('+')
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Board) symbol(p Position) byte {
	if c := b.At(p); c != empty {
		return c
	}
	if p != b.goal {
		return ' '
	}
	if b.goalRobot == AnyRobot {
		return '?'
	}
	return b.robots[b.goalRobot] - 'A' + 'a'
}
