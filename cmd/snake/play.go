package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

const defaultUI = "tcell"

var flagUI string

func runPlay(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(flagUI) {
		return fmt.Errorf("unknown front-end %q (run 'snake frontends')", flagUI)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	frontend, err := registry.Create(flagUI)
	if err != nil {
		return err
	}

	logger.Info("starting", "ui", frontend.ID(), "tick", cfg.Game.Tick, "seed", cfg.Game.Seed)
	err = frontend.Run(cmd.Context(), registry.Options{
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		logger.Error("game ended with error", "error", err)
		return err
	}
	logger.Info("bye")
	return nil
}
