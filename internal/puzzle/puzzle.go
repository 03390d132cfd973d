// Package puzzle reads puzzle descriptions.
//
// A description starts with the number of rows and columns followed by records
// separated by white space:
//
//	robot <name> <row> <col>
//	vertical_wall <row> <col.5>
//	horizontal_wall <row.5> <col>
//	goal <name|any> <row> <col>
package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-ricrob/recursivesolver/internal/board"
	log "github.com/sirupsen/logrus"
)

// Record tokens.
const (
	TokenRobot          = "robot"
	TokenVerticalWall   = "vertical_wall"
	TokenHorizontalWall = "horizontal_wall"
	TokenGoal           = "goal"
)

var (
	ErrUnknownToken   = errors.New("unknown token")
	ErrUnexpectedEOF  = errors.New("unexpected end of puzzle")
	ErrHalfCoordinate = errors.New("wall coordinate must be a half unit")
	ErrInvalidNumber  = errors.New("invalid number")
)

type scanner struct {
	s *bufio.Scanner
	n int // number of tokens read
}

func (s *scanner) next(what string) (string, error) {
	if !s.s.Scan() {
		if err := s.s.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: expected %s", ErrUnexpectedEOF, what)
	}
	s.n++
	return s.s.Text(), nil
}

func (s *scanner) number(what string) (int, error) {
	tok, err := s.next(what)
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidNumber, what, tok)
	}
	return i, nil
}

// gridLine reads a half unit coordinate like "2.5" and returns the grid line
// it denotes (2).
func (s *scanner) gridLine(what string) (int, error) {
	tok, err := s.next(what)
	if err != nil {
		return 0, err
	}
	return ParseGridLine(tok)
}

// ParseGridLine converts a half unit coordinate ("2.5") into the grid line
// number (2).
func ParseGridLine(s string) (int, error) {
	whole, frac, ok := strings.Cut(s, ".")
	if !ok || strings.TrimRight(frac, "0") != "5" {
		return 0, fmt.Errorf("%w: %q", ErrHalfCoordinate, s)
	}
	if whole == "" {
		return 0, nil // ".5"
	}
	line, err := strconv.Atoi(whole)
	if err != nil || strings.HasPrefix(whole, "-") {
		return 0, fmt.Errorf("%w: %q", ErrHalfCoordinate, s)
	}
	return line, nil
}

// Load reads a puzzle description from r and builds the board.
func Load(r io.Reader) (*board.Board, error) {
	s := &scanner{s: bufio.NewScanner(r)}
	s.s.Split(bufio.ScanWords)

	rows, err := s.number("rows")
	if err != nil {
		return nil, err
	}
	cols, err := s.number("cols")
	if err != nil {
		return nil, err
	}
	b, err := board.New(rows, cols)
	if err != nil {
		return nil, err
	}

	records := 0
	for s.s.Scan() {
		s.n++
		token := s.s.Text()
		if err := s.record(b, token); err != nil {
			return nil, fmt.Errorf("%s record (token %d): %w", token, s.n, err)
		}
		records++
	}
	if err := s.s.Err(); err != nil {
		return nil, err
	}
	if b.Goal() == board.NoPosition {
		return nil, fmt.Errorf("%w: %d records read", board.ErrNoGoal, records)
	}

	goalRobot := board.AnyRobotName
	if i := b.GoalRobot(); i != board.AnyRobot {
		goalRobot = string(b.Robot(i))
	}
	fields := log.Fields{
		"rows":      b.Rows(),
		"cols":      b.Cols(),
		"records":   records,
		"goal":      b.Goal().String(),
		"goalRobot": goalRobot,
	}
	if b.NumRobots() == 0 {
		log.WithFields(fields).Warn("puzzle has no robots and cannot be solved")
	} else {
		log.WithFields(fields).WithField("robots", b.NumRobots()).Debug("puzzle loaded")
	}
	return b, nil
}

func (s *scanner) record(b *board.Board, token string) error {
	switch token {
	case TokenRobot:
		name, err := s.next("robot name")
		if err != nil {
			return err
		}
		if len(name) != 1 {
			return fmt.Errorf("%w: %q", board.ErrInvalidRobotName, name)
		}
		p, err := s.position()
		if err != nil {
			return err
		}
		return b.PlaceRobot(p, name[0])

	case TokenVerticalWall:
		row, err := s.number("row")
		if err != nil {
			return err
		}
		line, err := s.gridLine("col")
		if err != nil {
			return err
		}
		return b.AddVerticalWall(row, line)

	case TokenHorizontalWall:
		line, err := s.gridLine("row")
		if err != nil {
			return err
		}
		col, err := s.number("col")
		if err != nil {
			return err
		}
		return b.AddHorizontalWall(line, col)

	case TokenGoal:
		robot, err := s.next("goal robot")
		if err != nil {
			return err
		}
		p, err := s.position()
		if err != nil {
			return err
		}
		return b.SetGoal(robot, p)

	default:
		return ErrUnknownToken
	}
}

func (s *scanner) position() (board.Position, error) {
	row, err := s.number("row")
	if err != nil {
		return board.NoPosition, err
	}
	col, err := s.number("col")
	if err != nil {
		return board.NoPosition, err
	}
	return board.Position{Row: row, Col: col}, nil
}

// LoadFile reads the puzzle description stored in file name.
func LoadFile(name string) (*board.Board, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open %s for reading: %w", name, err)
	}
	defer f.Close()
	b, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
