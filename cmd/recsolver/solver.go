package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-ricrob/recursivesolver/internal/board"
	"github.com/go-ricrob/recursivesolver/internal/config"
	"github.com/go-ricrob/recursivesolver/internal/puzzle"
	"github.com/go-ricrob/recursivesolver/internal/solver"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagAllSolutions = "all_solutions"
	flagVisualize    = "visualize"
)

// longFlags may be given with a single dash.
var longFlags = []string{
	config.KeyMaxMoves,
	config.KeyStartDepth,
	config.KeyLogLevel,
	config.KeyAddr,
	config.KeyMaxMovesLimit,
	flagAllSolutions,
	flagVisualize,
}

// normalizeArgs rewrites "-max_moves" to "--max_moves".
func normalizeArgs(args []string) []string {
	normalized := make([]string, len(args))
	for i, arg := range args {
		normalized[i] = arg
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") {
			continue
		}
		name, _, _ := strings.Cut(arg[1:], "=")
		for _, flag := range longFlags {
			if name == flag {
				normalized[i] = "-" + arg
				break
			}
		}
	}
	return normalized
}

type options struct {
	allSolutions bool
	visualize    bool
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfg *config.Config
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "recsolver <puzzle_file>",
		Short: "Find the shortest solution of a ricochet robots puzzle",
		Long: `Find the shortest sequence of moves that brings the goal robot (or any robot)
onto the goal cell of a ricochet robots puzzle.

Examples:
  recsolver puzzle.txt
  recsolver puzzle.txt -max_moves 6
  recsolver puzzle.txt -max_moves 6 -all_solutions
  recsolver puzzle.txt -max_moves 4 -visualize`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if f := cmd.Flags().Lookup(config.KeyMaxMoves); f != nil && f.Changed {
				if n, _ := cmd.Flags().GetInt(config.KeyMaxMoves); n <= 0 {
					return fmt.Errorf("%s must be greater than zero: %d", config.KeyMaxMoves, n)
				}
			}
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			var err error
			if cfg, err = config.Load(v); err != nil {
				return err
			}
			cfg.SetupLogging()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := puzzle.LoadFile(args[0])
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return solve(cmd.OutOrStdout(), b, cfg, opts)
		},
	}

	rootCmd.PersistentFlags().Int(config.KeyMaxMoves, 0, "Maximum number of moves (default rows * cols)")
	rootCmd.PersistentFlags().Int(config.KeyStartDepth, 0, "First depth bound of the iterative deepening search")
	rootCmd.PersistentFlags().String(config.KeyLogLevel, "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&opts.allSolutions, flagAllSolutions, false, "Print all solutions with the fewest moves without replaying them")
	rootCmd.Flags().BoolVar(&opts.visualize, flagVisualize, false, "Print the minimal number of moves needed to reach every cell")

	rootCmd.AddCommand(newServeCmd(func() *config.Config { return cfg }))
	return rootCmd
}

func solve(w io.Writer, b *board.Board, cfg *config.Config, opts *options) error {
	if opts.visualize {
		maxMoves := cfg.MaxMoves
		if maxMoves == 0 {
			maxMoves = b.Rows() * b.Cols()
			log.WithField(config.KeyMaxMoves, maxMoves).Warn("no move limit given, exploring all boards up to rows * cols moves")
		}
		_, err := fmt.Fprint(w, solver.Accessibility(b, maxMoves))
		return err
	}

	runner := solver.New(b,
		solver.WithMaxDepth(cfg.MaxMoves),
		solver.WithStartDepth(cfg.StartDepth),
	)

	if opts.allSolutions {
		result := runner.RunAll()
		if !result.Solved() {
			fmt.Fprintf(w, "no solutions with %d or fewer moves\n", result.MaxDepth())
			return nil
		}
		for i, moves := range result.Solutions() {
			fmt.Fprintf(w, "solution %d:\n", i+1)
			for _, m := range moves {
				fmt.Fprintln(w, m)
			}
			final := b.Clone()
			if err := replay(final, moves, nil); err != nil {
				return err
			}
			fmt.Fprintf(w, "robot %c reaches the goal after %d moves\n", goalReacher(final), len(moves))
		}
		fmt.Fprintf(w, "%d solutions with %d moves\n", len(result.Solutions()), len(result.Moves()))
		return nil
	}

	fmt.Fprint(w, b)
	result := runner.Run()
	if !result.Solved() {
		fmt.Fprintf(w, "no solutions with %d or fewer moves\n", result.MaxDepth())
		return nil
	}
	final := b.Clone()
	if err := replay(final, result.Moves(), w); err != nil {
		return err
	}
	fmt.Fprintf(w, "robot %c reaches the goal after %d moves\n", goalReacher(final), len(result.Moves()))
	return nil
}

// replay executes moves on b. If w is not nil every command is printed
// followed by the resulting board.
func replay(b *board.Board, moves []board.Command, w io.Writer) error {
	for _, m := range moves {
		if _, err := b.ExecuteCommand(m); err != nil {
			return err
		}
		if w != nil {
			fmt.Fprintln(w, m)
			fmt.Fprint(w, b)
		}
	}
	return nil
}

func goalReacher(b *board.Board) byte {
	if b.GoalRobot() != board.AnyRobot {
		return b.Robot(b.GoalRobot())
	}
	return b.At(b.Goal())
}

func main() {
	rootCmd := newRootCmd(config.New())
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
