package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacey-invader/internal/invaders"
	"github.com/vovakirdan/spacey-invader/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized to the playfield and start a game.

Controls:
  Left/A, Right/D  - Steer
  Space            - Fire
  P/Esc            - Pause
  R                - Restart
  Q                - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := invaders.OptionsFromConfig(cfg)
	rc := runtimeConfig(cfg, int(cfg.Window.Width), int(cfg.Window.Height))
	return gui.Run(opts, rc, gui.Options{Title: cfg.Window.Title, Logger: logger})
}
