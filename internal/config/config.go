// Package config provides YAML-based configuration loading and validation
// for the snake game.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config contains all configuration for a game session.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Game  GameConfig  `yaml:"game"`
	Keys  KeysConfig  `yaml:"keys"`
	Log   LogConfig   `yaml:"log"`
}

// BoardConfig limits the board derived from the terminal size.
type BoardConfig struct {
	MaxWidth    int `yaml:"max_width"`
	MaxHeight   int `yaml:"max_height"`
	BorderWidth int `yaml:"border_width"`
}

// GameConfig holds the speed and starting size.
type GameConfig struct {
	Tick          time.Duration `yaml:"tick"`
	InitialLength int           `yaml:"initial_length"`
	Seed          int64         `yaml:"seed"` // 0 = seed from the clock
}

// KeysConfig lists key names bound to each action.
type KeysConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Restart []string `yaml:"restart"`
	Pause   []string `yaml:"pause"`
	Quit    []string `yaml:"quit"`
}

// LogConfig selects the log level and destination file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty = discard
}

// Validate checks the configuration and returns a *core.ConfigError on the
// first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Board.MaxWidth <= 0:
		return &core.ConfigError{Field: "board.max_width", Reason: "must be positive"}
	case c.Board.MaxHeight <= 0:
		return &core.ConfigError{Field: "board.max_height", Reason: "must be positive"}
	case c.Board.MaxWidth > core.MaxBoardWidth:
		return &core.ConfigError{Field: "board.max_width", Reason: fmt.Sprintf("must not exceed %d", core.MaxBoardWidth)}
	case c.Board.MaxHeight > core.MaxBoardHeight:
		return &core.ConfigError{Field: "board.max_height", Reason: fmt.Sprintf("must not exceed %d", core.MaxBoardHeight)}
	case c.Board.BorderWidth < 1:
		return &core.ConfigError{Field: "board.border_width", Reason: "must be at least 1"}
	case c.Game.Tick <= 0:
		return &core.ConfigError{Field: "game.tick", Reason: "must be positive"}
	case c.Game.InitialLength < 1:
		return &core.ConfigError{Field: "game.initial_length", Reason: "must be at least 1"}
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return &core.ConfigError{Field: "log.level", Reason: err.Error()}
		}
	}

	if len(c.Keys.Quit) == 0 {
		return &core.ConfigError{Field: "keys.quit", Reason: "needs at least one key"}
	}

	// One key may not trigger two actions.
	seen := make(map[string]string)
	for action, keys := range c.Keys.byAction() {
		for _, k := range keys {
			if prev, ok := seen[k]; ok && prev != action {
				return &core.ConfigError{
					Field:  "keys." + action,
					Reason: fmt.Sprintf("key %q already bound to %s", k, prev),
				}
			}
			seen[k] = action
		}
	}
	return nil
}

// byAction returns the key lists by their YAML names.
func (k KeysConfig) byAction() map[string][]string {
	return map[string][]string{
		"up":      k.Up,
		"down":    k.Down,
		"left":    k.Left,
		"right":   k.Right,
		"restart": k.Restart,
		"pause":   k.Pause,
		"quit":    k.Quit,
	}
}

// KeyMap builds the key name to action table.
func (k KeysConfig) KeyMap() core.KeyMap {
	m := make(core.KeyMap)
	m.Bind(core.ActionUp, k.Up...)
	m.Bind(core.ActionDown, k.Down...)
	m.Bind(core.ActionLeft, k.Left...)
	m.Bind(core.ActionRight, k.Right...)
	m.Bind(core.ActionConfirm, k.Restart...)
	m.Bind(core.ActionPause, k.Pause...)
	m.Bind(core.ActionQuit, k.Quit...)
	return m
}
