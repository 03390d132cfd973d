// Package solver implements a recursive iterative deepening solver.
//
// The search clones the board for every move it tries and keeps no record of
// visited states, so equal positions reached on different paths are explored
// again. The work grows with (4 * number of robots) ^ depth: callers have to
// bound the search depth.
package solver

import (
	"context"

	"github.com/go-ricrob/recursivesolver/internal/board"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Runner runs a search.
type Runner interface {
	// Run returns the first solution of minimal depth bound.
	Run() Resulter
	// RunAll returns all solutions of minimal depth bound.
	RunAll() Resulter
}

var _ Runner = (*solver)(nil)

// Options defines parameters of a search.
type Options struct {
	// MaxDepth is the last depth bound tried. Zero means rows * cols.
	MaxDepth int
	// StartDepth is the first depth bound tried.
	StartDepth int
	Logger     *log.Entry
	// Context stops the search when done.
	Context context.Context
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMaxDepth sets the maximum number of moves.
func WithMaxDepth(maxDepth int) Option {
	return func(o *Options) { o.MaxDepth = maxDepth }
}

// WithStartDepth sets the first depth bound of the deepening schedule.
func WithStartDepth(startDepth int) Option {
	return func(o *Options) { o.StartDepth = startDepth }
}

// WithLogger sets the logger used for progress information.
func WithLogger(logger *log.Entry) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithContext sets the context which cancels the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Context = ctx }
}

// noCommand is the last command of the start state.
var noCommand = board.Command{Index: -1}

type solver struct {
	board       *board.Board
	maxDepth    int
	startDepth  int
	log         *log.Entry
	ctx         context.Context
	numCalcMove int
}

// New returns a Runner searching solutions for board b.
func New(b *board.Board, options ...Option) Runner {
	opts := Options{}
	for _, option := range options {
		option(&opts)
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = b.Rows() * b.Cols()
	}
	if opts.StartDepth < 0 {
		opts.StartDepth = 0
	}
	if opts.Logger == nil {
		opts.Logger = log.NewEntry(log.StandardLogger())
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	return &solver{
		board:      b,
		maxDepth:   opts.MaxDepth,
		startDepth: opts.StartDepth,
		log:        opts.Logger,
		ctx:        opts.Context,
	}
}

func (s *solver) canceled() bool { return s.ctx != nil && s.ctx.Err() != nil }

// FindPath searches a solution of at most depth moves. The commands are
// returned in execution order.
func FindPath(b *board.Board, depth int) ([]board.Command, bool) {
	s := &solver{}
	return s.findPath(b, depth, noCommand)
}

func (s *solver) findPath(b *board.Board, depth int, last board.Command) ([]board.Command, bool) {
	if b.IsSolved() {
		return []board.Command{}, true
	}
	if depth <= 0 || s.canceled() {
		return nil, false
	}
	for i := 0; i < b.NumRobots(); i++ {
		for d := board.Direction(0); d < board.NumDirection; d++ {
			// repeating the last move is a no-op
			if last.Index == i && last.Direction == d {
				continue
			}
			next := b.Clone()
			if !next.MoveRobot(i, d) {
				continue
			}
			s.numCalcMove++
			c := board.Command{Robot: b.Robot(i), Index: i, Direction: d}
			if path, ok := s.findPath(next, depth-1, c); ok {
				return slices.Insert(path, 0, c), true
			}
		}
	}
	return nil, false
}

func (s *solver) findAll(b *board.Board, depth int, last board.Command, prefix []board.Command, solutions *[][]board.Command) {
	if b.IsSolved() {
		*solutions = append(*solutions, slices.Clone(prefix))
		return
	}
	if depth <= 0 || s.canceled() {
		return
	}
	for i := 0; i < b.NumRobots(); i++ {
		for d := board.Direction(0); d < board.NumDirection; d++ {
			if last.Index == i && last.Direction == d {
				continue
			}
			next := b.Clone()
			if !next.MoveRobot(i, d) {
				continue
			}
			s.numCalcMove++
			c := board.Command{Robot: b.Robot(i), Index: i, Direction: d}
			s.findAll(next, depth-1, c, append(prefix, c), solutions)
		}
	}
}

func (s *solver) run(search func(depth int) [][]board.Command) Resulter {
	s.numCalcMove = 0
	r := &result{maxDepth: s.maxDepth}
	if s.board.Goal() == board.NoPosition {
		s.log.Warn("board has no goal")
		return r
	}
	for depth := s.startDepth; depth <= s.maxDepth; depth++ {
		s.log.WithFields(log.Fields{"depth": depth, "numCalcMove": s.numCalcMove}).Debug("search level")
		if solutions := search(depth); len(solutions) > 0 {
			r.solutions, r.depth = solutions, len(solutions[0])
			break
		}
		if err := s.ctx.Err(); err != nil {
			r.err = err
			s.log.WithError(err).WithField("depth", depth).Info("search canceled")
			break
		}
	}
	r.numCalcMove = s.numCalcMove
	s.log.WithFields(log.Fields{
		"solved":      r.Solved(),
		"moves":       len(r.Moves()),
		"numCalcMove": r.numCalcMove,
	}).Debug("search finished")
	return r
}

// Run tries the depth bounds in increasing order and returns the first
// solution found. Within a bound robots are tried in index order and
// directions in north, east, south, west order.
func (s *solver) Run() Resulter {
	return s.run(func(depth int) [][]board.Command {
		if path, ok := s.findPath(s.board, depth, noCommand); ok {
			return [][]board.Command{path}
		}
		return nil
	})
}

// RunAll is like Run but returns every solution of minimal length found with
// the first successful bound. A start depth above the minimal length still
// yields the minimal solutions only.
func (s *solver) RunAll() Resulter {
	return s.run(func(depth int) [][]board.Command {
		var solutions [][]board.Command
		s.findAll(s.board, depth, noCommand, nil, &solutions)
		return shortest(solutions)
	})
}

// shortest keeps the solutions of minimal length in their order.
func shortest(solutions [][]board.Command) [][]board.Command {
	if len(solutions) == 0 {
		return nil
	}
	n := len(solutions[0])
	for _, s := range solutions[1:] {
		n = min(n, len(s))
	}
	return slices.DeleteFunc(solutions, func(s []board.Command) bool { return len(s) != n })
}
