// snake is a terminal Snake game.
//
// Usage:
//
//	snake                    - Play in the current terminal
//	snake frontends          - List available terminal front-ends
//	snake config             - Print the effective configuration
//	snake serve              - Serve games over SSH
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--tick <duration>   - Time between moves (e.g. 80ms)
//	--length <n>        - Initial snake length
//	--seed <value>      - RNG seed for reproducible food placement
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	// Import front-ends to register them
	_ "github.com/vovakirdan/tui-snake/internal/platform/term"
	_ "github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagTick     time.Duration
	flagLength   int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Play Snake in your terminal",
	Long: `Steer the snake to the food. Each item eaten makes it one cell longer.
Leaving the board or biting yourself ends the round.

Controls (configurable):
  Arrows/WASD/HJKL  - Turn
  Space/P           - Pause and resume
  Enter             - Play again after losing
  Esc/Q/Ctrl+C      - Quit

Examples:
  snake
  snake --tick 60ms --length 4
  snake --ui tea
  snake --config ./my-snake.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Time between moves (overrides game.tick)")
	rootCmd.PersistentFlags().IntVar(&flagLength, "length", 0, "Initial snake length (overrides game.initial_length)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (overrides log.file)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides log.level)")

	rootCmd.Flags().StringVar(&flagUI, "ui", defaultUI, "Terminal front-end (see 'snake frontends')")

	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("tick") {
		cfg.Game.Tick = flagTick
	}
	if flags.Changed("length") {
		cfg.Game.InitialLength = flagLength
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
