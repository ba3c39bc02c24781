package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spacey-invader/internal/config"
	"github.com/vovakirdan/spacey-invader/internal/invaders"
	"github.com/vovakirdan/spacey-invader/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D  - Steer
  Space            - Fire
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Logs go to ~/.spacey-invader/invaders.log unless --log-file is set.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// The terminal belongs to the game; never log to it.
	if cfg.Logging.File == "" {
		cfg.Logging.File = config.UserPath("invaders.log")
	}
	logger, closer, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := invaders.OptionsFromConfig(cfg)
	opts.Logger = logger
	game := invaders.NewGame(opts, cfg.Display.HUDRows)

	return tui.Run(game, runtimeConfig(cfg, width, height), tui.Options{
		Keys:          tui.DefaultKeyMap(),
		HoldTime:      time.Duration(cfg.Input.HoldMS) * time.Millisecond,
		ScreenshotDir: config.UserPath("screenshots"),
		Logger:        logger,
	})
}
