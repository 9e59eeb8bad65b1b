package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			MaxWidth:    core.MaxBoardWidth,
			MaxHeight:   core.MaxBoardHeight,
			BorderWidth: 1,
		},
		Game: GameConfig{
			Tick:          100 * time.Millisecond,
			InitialLength: 1,
		},
		Keys: KeysConfig{
			Up:      []string{"up", "w", "k"},
			Down:    []string{"down", "s", "j"},
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Restart: []string{"enter"},
			Pause:   []string{" ", "p"},
			Quit:    []string{"esc", "q", "ctrl+c"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
