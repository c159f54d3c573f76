// go-memtiles is a tile-matching memory game for the terminal.
//
// Usage:
//
//	go-memtiles [--difficulty easy|medium|hard] [--config path] [--seed n] [--delay ms] [--log-file path]
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"go-memtiles/internal/config"
	"go-memtiles/internal/game"
	"go-memtiles/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagDelay      int
	flagLogFile    string
)

var rootCmd = &cobra.Command{
	Use:   "go-memtiles",
	Short: "Flip tiles two at a time and find every pair",
	Long: `go-memtiles is a single-screen memory game. Flip two tiles per move;
matching pairs stay face up, others flip back after a short delay.

Controls:
  Arrows/wasd, k/j/l   - Move the cursor
  Mouse click          - Flip a tile
  Space/Enter          - Flip the tile under the cursor
  R                    - New board
  E / M / H            - Easy (4x4), Medium (5x5), Hard (6x6)
  ?                    - Toggle full help
  Q/Esc/Ctrl+C         - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "", "Difficulty: easy, medium, hard")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.Flags().IntVar(&flagDelay, "delay", 0, "Mismatch display time in milliseconds")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("difficulty") {
		cfg.Difficulty = flagDifficulty
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if cmd.Flags().Changed("delay") {
		cfg.MismatchDelayMS = flagDelay
	}
	cfg.Validate()

	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	difficulty, ok := game.ParseDifficulty(cfg.Difficulty)
	if !ok {
		logger.Warn("unknown difficulty, using default", "requested", cfg.Difficulty, "default", difficulty)
	}

	sess, err := game.NewSession(difficulty,
		game.WithSeed(cfg.Seed),
		game.WithMismatchDelay(cfg.MismatchDelay()),
		game.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	model := ui.NewModel(sess, ui.Options{
		TickInterval: cfg.TickInterval(),
		ShowHelp:     cfg.ShowHelp,
		Logger:       logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	for _, r := range sess.Rounds {
		logger.Info("round", "game", r.ID, "difficulty", r.Difficulty, "moves", r.Moves, "score", r.Score, "won", r.Won)
	}
	logger.Info("session finished", "rounds", len(sess.Rounds), "won", sess.RoundsWon(), "score", sess.TotalScore)
	if won := sess.RoundsWon(); won > 0 {
		fmt.Printf("Boards cleared: %d | Total score: %d\n", won, sess.TotalScore)
	}
	return nil
}

// newLogger logs to path, or discards everything when path is empty; the
// terminal belongs to the game.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "memtiles",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
